package bitcoin

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

// DialConfig describes how to reach a bitcoind JSON-RPC endpoint. When User
// is empty the client authenticates with the cookie at CookiePath, or with
// the default bitcoind cookie for Params.
type DialConfig struct {
	URL        string
	User       string
	Password   string
	CookiePath string
	Params     *chaincfg.Params
}

// DefaultCookiePath returns where bitcoind writes its RPC auth cookie for
// the network. Every network but mainnet keeps its data in a subdirectory
// named after it.
func DefaultCookiePath(params *chaincfg.Params) (string, error) {
	if params == nil {
		return "", errors.New("chain params are required")
	}
	dir := btcutil.AppDataDir("bitcoin", false)
	if params.Net != wire.MainNet {
		dir = filepath.Join(dir, params.Name)
	}
	return filepath.Join(dir, ".cookie"), nil
}

// NewConnConfig validates cfg and builds an HTTP POST mode connection config.
// Cookie credentials are left to rpcclient, which rereads the file when
// bitcoind rotates it.
func NewConnConfig(cfg DialConfig) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	if cfg.User != "" {
		if cfg.Password == "" {
			return nil, errors.New("rpc password is required with rpc user")
		}
		connCfg.User = cfg.User
		connCfg.Pass = cfg.Password
		return connCfg, nil
	}

	cookie := cfg.CookiePath
	if cookie == "" {
		if cookie, err = DefaultCookiePath(cfg.Params); err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(cookie); err != nil {
		return nil, fmt.Errorf("rpc cookie: %w", err)
	}
	connCfg.CookiePath = cookie
	return connCfg, nil
}

// Dial opens a bitcoind RPC client. Callers must Shutdown it.
func Dial(cfg DialConfig) (*rpcclient.Client, error) {
	connCfg, err := NewConnConfig(cfg)
	if err != nil {
		return nil, err
	}
	return rpcclient.New(connCfg, nil)
}
