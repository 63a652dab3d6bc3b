package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/codec"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/service"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/verifier"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/metrics"
)

type config struct {
	HeadersFile       string        `long:"headers-file" env:"HEADERLINK_HEADERS_FILE" description:"JSON file of getblockheader records; when empty headers are fetched over RPC"`
	AllowUnknownField bool          `long:"allow-unknown-fields" env:"HEADERLINK_ALLOW_UNKNOWN_FIELDS" description:"accept header records carrying extra RPC fields"`
	Network           model.Network `long:"network" env:"HEADERLINK_NETWORK" description:"network name" default:"mainnet"`
	FromHeight        uint32        `long:"from-height" env:"HEADERLINK_FROM_HEIGHT" description:"first height to fetch over RPC"`
	ToHeight          uint32        `long:"to-height" env:"HEADERLINK_TO_HEIGHT" description:"last height to fetch over RPC"`
	Tip               uint32        `long:"tip" env:"HEADERLINK_TIP" description:"verify this many headers ending at the node's best block instead of a fixed range"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"HEADERLINK_CLICKHOUSE_DSN" description:"ClickHouse DSN; when set reports are persisted"`
	RPCURL            string        `long:"rpc-url" env:"HEADERLINK_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser           string        `long:"rpc-user" env:"HEADERLINK_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword       string        `long:"rpc-password" env:"HEADERLINK_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCCookie         string        `long:"rpc-cookie" env:"HEADERLINK_RPC_COOKIE" description:"bitcoind auth cookie used when no RPC user is set; defaults to the network's cookie in the bitcoin data dir"`
	MetricsAddr       string        `long:"metrics-addr" env:"HEADERLINK_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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
		if errors.Is(err, verifier.ErrChainBreak) {
			logger.Error("header chain is broken", zap.Error(err))
			_ = logger.Sync()
			os.Exit(2)
		}
		logger.Fatal("header verification failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, params *chaincfg.Params, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	v, err := verifier.New(metrics.NewVerifier(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init verifier: %w", err)
	}

	var repo service.ReportRepository
	if cfg.ClickhouseDSN != "" {
		chRepo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := chRepo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		repo = chRepo
	}

	svc, err := service.NewVerifyService(v, repo, metrics.NewService(cfg.Network), cfg.Network, logger)
	if err != nil {
		return err
	}

	var res service.Result
	if cfg.HeadersFile != "" {
		var opts []codec.ParseOption
		if cfg.AllowUnknownField {
			opts = append(opts, codec.WithUnknownFields())
		}
		res, err = svc.VerifyFile(ctx, cfg.HeadersFile, opts...)
	} else {
		res, err = verifyOverRPC(ctx, cfg, params, svc, logger)
	}
	if err != nil {
		return err
	}

	logger.Info("header chain verified",
		zap.String("run_id", res.RunID),
		zap.Int("headers", res.Report.Headers),
		zap.Uint32("from", res.Report.FromHeight),
		zap.Uint32("to", res.Report.ToHeight),
	)
	return nil
}

func verifyOverRPC(ctx context.Context, cfg config, params *chaincfg.Params, svc *service.VerifyService, logger *zap.Logger) (service.Result, error) {
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
	src := bitcoin.NewHeaderSource(rpc, logger)
	if cfg.Tip > 0 {
		return svc.VerifyTip(ctx, src, cfg.Tip)
	}
	return svc.VerifyRange(ctx, src, cfg.FromHeight, cfg.ToHeight)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
