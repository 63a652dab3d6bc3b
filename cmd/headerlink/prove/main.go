package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/codec"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/executor"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/service"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/verifier"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/metrics"
)

type config struct {
	HeadersFile       string        `long:"headers-file" env:"HEADERLINK_HEADERS_FILE" description:"JSON file of getblockheader records; when empty the header and its parent are fetched over RPC"`
	AllowUnknownField bool          `long:"allow-unknown-fields" env:"HEADERLINK_ALLOW_UNKNOWN_FIELDS" description:"accept header records carrying extra RPC fields"`
	Network           model.Network `long:"network" env:"HEADERLINK_NETWORK" description:"network name" default:"mainnet"`
	Height            uint32        `long:"height" env:"HEADERLINK_PROVE_HEIGHT" description:"height of the header to prove" required:"true"`
	RPCURL            string        `long:"rpc-url" env:"HEADERLINK_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser           string        `long:"rpc-user" env:"HEADERLINK_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword       string        `long:"rpc-password" env:"HEADERLINK_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCCookie         string        `long:"rpc-cookie" env:"HEADERLINK_RPC_COOKIE" description:"bitcoind auth cookie used when no RPC user is set; defaults to the network's cookie in the bitcoin data dir"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	params, err := cfg.Network.Params()
	if err != nil {
		logger.Fatal("invalid network", zap.Error(err))
	}

	if err := run(ctx, cfg, params, logger); err != nil {
		logger.Fatal("header proving failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, params *chaincfg.Params, logger *zap.Logger) error {
	if cfg.HeadersFile == "" && cfg.Height == 0 {
		return errors.New("genesis has no parent to prove against")
	}

	v, err := verifier.New(metrics.NewVerifier(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init verifier: %w", err)
	}
	loader, err := service.NewVerifyService(v, nil, metrics.NewService(cfg.Network), cfg.Network, logger)
	if err != nil {
		return err
	}

	res, err := load(ctx, cfg, params, loader, logger)
	if err != nil && !errors.Is(err, verifier.ErrChainBreak) {
		return err
	}
	if err != nil {
		logger.Warn("loaded headers do not link; the receipt will commit false for the break", zap.Error(err))
	}

	exec, err := executor.New(executor.DigestSealer{}, metrics.NewExecutor(), logger)
	if err != nil {
		return fmt.Errorf("init executor: %w", err)
	}
	prover, err := service.NewProveService(exec, executor.DigestSealer{}, logger)
	if err != nil {
		return err
	}

	proof, err := prover.Prove(ctx, res.Store, cfg.Height)
	if err != nil {
		return err
	}

	logger.Info("proof generated",
		zap.Uint32("height", proof.Height),
		zap.String("claimed_prev_hash", fmt.Sprintf("%x", proof.Inputs.ClaimedPrevHash)),
		zap.String("public_values", fmt.Sprintf("%x", proof.Receipt.PublicValues)),
		zap.Stringer("seal", proof.Receipt.Seal),
		zap.Bool("is_valid", proof.IsValid),
	)
	return nil
}

func load(ctx context.Context, cfg config, params *chaincfg.Params, loader *service.VerifyService, logger *zap.Logger) (service.Result, error) {
	if cfg.HeadersFile != "" {
		var opts []codec.ParseOption
		if cfg.AllowUnknownField {
			opts = append(opts, codec.WithUnknownFields())
		}
		return loader.VerifyFile(ctx, cfg.HeadersFile, opts...)
	}

	rpcClient, err := bitcoin.Dial(bitcoin.DialConfig{
		URL:        cfg.RPCURL,
		User:       cfg.RPCUser,
		Password:   cfg.RPCPassword,
		CookiePath: cfg.RPCCookie,
		Params:     params,
	})
	if err != nil {
		return service.Result{}, fmt.Errorf("init bitcoin rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	rpc := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network))
	return loader.VerifyRange(ctx, bitcoin.NewHeaderSource(rpc, logger), cfg.Height-1, cfg.Height)
}
