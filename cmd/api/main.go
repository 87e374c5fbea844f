package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/perebo-sp/nft-marketplace/internal/api/middleware"
	"github.com/perebo-sp/nft-marketplace/internal/api/server"
	"github.com/perebo-sp/nft-marketplace/internal/api/shared/executor"
	"github.com/perebo-sp/nft-marketplace/internal/bank"
	"github.com/perebo-sp/nft-marketplace/internal/clock"
	"github.com/perebo-sp/nft-marketplace/internal/config"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
	"github.com/perebo-sp/nft-marketplace/internal/ledger"
	"github.com/perebo-sp/nft-marketplace/internal/logger"
	"github.com/perebo-sp/nft-marketplace/internal/messaging"
	"github.com/perebo-sp/nft-marketplace/internal/providers/jetstream"
	"github.com/perebo-sp/nft-marketplace/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting NFT marketplace API")

	ctx := context.Background()

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Rebuild the in-memory ledger state from the last committed snapshot
	state, err := dataStore.LoadState(ctx)
	if err != nil {
		logger.Fatal("Failed to load ledger state", zap.Error(err))
	}
	logger.Info("Loaded ledger state",
		zap.Uint64("total_supply", state.TotalSupply),
		zap.Uint64("total_staked", state.TotalStaked),
	)

	// Logical clock: heights derive from wall time since genesis
	genesis := time.Now().UTC()
	if cfg.Ledger.GenesisTime != "" {
		genesis, err = time.Parse(time.RFC3339, cfg.Ledger.GenesisTime)
		if err != nil {
			logger.Fatal("Failed to parse genesis time", zap.Error(err))
		}
	}
	ledgerClock := clock.NewInterval(genesis, cfg.Ledger.BlockInterval)

	custodian := domain.Account(cfg.Ledger.CustodianAddress).Normalize()
	operator := domain.Account(cfg.Ledger.OperatorAddress).Normalize()
	if !custodian.Valid() {
		logger.Fatal("Invalid custodian address", zap.String("address", cfg.Ledger.CustodianAddress))
	}
	if !operator.Valid() {
		logger.Fatal("Invalid operator address", zap.String("address", cfg.Ledger.OperatorAddress))
	}

	ledgerBank := bank.NewInMemory()
	engine := ledger.New(state, ledgerBank, ledgerClock, custodian, operator)

	// Event publisher: NATS JetStream when configured, otherwise a no-op
	var publisher messaging.Publisher = messaging.Noop{}
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			PublishRetries: cfg.NATS.PublishRetries,
			PoolSize:       cfg.NATS.PoolSize,
		})
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		logger.Info("Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.Warn("NATS URL not configured, ledger events will not be published")
	}
	defer publisher.Close()

	exec := executor.NewExecutor(engine, ledgerBank, dataStore, publisher)

	serverConfig := server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		RateLimitRPS:       cfg.Server.RateLimitRPS,
		RateLimitBurst:     cfg.Server.RateLimitBurst,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error(err, zap.String("component", "server"))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
