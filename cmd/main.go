package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"

	"crowdfund-web/internal/adapter/ethereum"
	"crowdfund-web/internal/adapter/http"
	"crowdfund-web/internal/adapter/postgres"
	"crowdfund-web/internal/adapter/usecase"
	"crowdfund-web/internal/adapter/wallet"
	"crowdfund-web/internal/config"
	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/db"
	"crowdfund-web/internal/metrics"
	"crowdfund-web/internal/scheduler"
)

// main loads configuration, connects the journal database, the chain RPC
// endpoint and the keystore wallet, then serves the campaign pages until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	client, err := ethclient.DialContext(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.Error("rpc connection error", slog.String("url", cfg.Chain.RPCURL), slog.Any("error", err))
		return
	}
	defer client.Close()

	keys, err := wallet.Open(cfg.Wallet.KeystoreDir, cfg.Wallet.Passphrase, cfg.Chain.ChainID)
	if err != nil {
		logger.Error("keystore error", slog.Any("error", err))
		return
	}
	if cfg.Wallet.Account != "" {
		if !common.IsHexAddress(cfg.Wallet.Account) {
			logger.Error("invalid WALLET_ACCOUNT", slog.String("account", cfg.Wallet.Account))
			return
		}
		if err = keys.Connect(common.HexToAddress(cfg.Wallet.Account)); err != nil {
			logger.Error("connect account", slog.Any("error", err))
			return
		}
	}
	logger.Info("keystore loaded", slog.Int("accounts", len(keys.Accounts())))

	m := metrics.New(prometheus.NewRegistry())
	reader := ethereum.NewCampaignReader(client, m)
	factory := ethereum.NewFactoryReader(client, cfg.Chain.FactoryAddress, m)
	writer := ethereum.NewTierTransactor(client, keys, m)
	journal := postgres.NewSubmissionJournal(pool)

	svc := usecase.NewCampaignUseCase(reader, factory, writer, journal, keys,
		usecase.WithLogger(logger),
		usecase.WithLocation(cfg.Display.Location()),
		usecase.WithReadTimeout(cfg.Chain.ReadTimeout),
		usecase.WithLagGrace(cfg.Chain.LagGrace),
		usecase.WithConfirmTimeout(cfg.Chain.ConfirmTimeout),
		usecase.WithListingConcurrency(cfg.Chain.ListingConcurrency),
	)

	reconciler := scheduler.New(cfg.Journal.ReconcileSpec, cfg.Journal.BatchSize, journal, writer, logger, m)
	if err = reconciler.Start(); err != nil {
		logger.Error("reconciler error", slog.Any("error", err))
		return
	}
	defer reconciler.Stop()

	handler, err := httpadapter.NewHandler(svc, keys, logger,
		httpadapter.WithMetrics(m),
		httpadapter.WithCarousel(domain.NewCarousel(domain.DefaultSlides, cfg.Display.CarouselInterval)),
		httpadapter.WithHealthCheck("postgres", pool.Ping),
		httpadapter.WithHealthCheck("rpc", func(ctx context.Context) error {
			_, err := client.ChainID(ctx)
			return err
		}),
	)
	if err != nil {
		logger.Error("template error", slog.Any("error", err))
		return
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
