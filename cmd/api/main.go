package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/api/middleware"
	"github.com/soundvine/collectibles-indexer/internal/api/server"
	"github.com/soundvine/collectibles-indexer/internal/collectibles"
	"github.com/soundvine/collectibles-indexer/internal/config"
	"github.com/soundvine/collectibles-indexer/internal/framestore"
	"github.com/soundvine/collectibles-indexer/internal/logger"
	"github.com/soundvine/collectibles-indexer/internal/media/gifframe"
	"github.com/soundvine/collectibles-indexer/internal/media/sniffer"
	"github.com/soundvine/collectibles-indexer/internal/messaging"
	"github.com/soundvine/collectibles-indexer/internal/providers/metaplex"
	"github.com/soundvine/collectibles-indexer/internal/providers/opensea"
	"github.com/soundvine/collectibles-indexer/internal/ratelimit"
	"github.com/soundvine/collectibles-indexer/internal/store"
	"github.com/soundvine/collectibles-indexer/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "collectibles-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting collectibles API")

	// Adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Media.HTTPTimeout)

	// Database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db, jsonAdapter, clock)
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Rate-limiting proxy for vendor API calls
	redisClient := adapter.NewRedisClient(cfg.RateLimiter.RedisAddr, cfg.RateLimiter.RedisPassword, cfg.RateLimiter.RedisDB)
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer rateLimitProxy.Close()

	// Event publisher
	publisher, err := messaging.NewJetStreamPublisher(messaging.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Frame store with TTL eviction
	frames := framestore.New(clock, framestore.Config{
		BaseURL:       strings.TrimSuffix(cfg.Server.PublicURL, "/") + "/api/v1/frames",
		TTL:           cfg.Media.FrameTTL,
		SweepInterval: cfg.Media.FrameSweepInterval,
	})
	go frames.Run(ctx)

	// Media pipeline
	uriResolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
	})
	mediaSniffer := sniffer.New(httpClient)
	frameExtractor := gifframe.New(
		httpClient,
		adapter.NewGIFDecoder(),
		adapter.NewImageEncoder(),
		frames,
		gifframe.Config{SupportsPartialFetch: cfg.Media.SupportsPartialGifFetch},
	)

	// Provider clients and adapters
	openseaClient := opensea.NewClient(httpClient, rateLimitProxy, cfg.Vendors.OpenSeaURL, cfg.Vendors.OpenSeaAPIKey, jsonAdapter)
	metaplexClient := metaplex.NewClient(httpClient, rateLimitProxy, cfg.Vendors.MetaplexURL, jsonAdapter)
	openseaAdapter := collectibles.NewOpenSeaAdapter(mediaSniffer, frameExtractor, uriResolver)
	metaplexAdapter := collectibles.NewMetaplexAdapter(mediaSniffer, frameExtractor, uriResolver)
	assembler := collectibles.NewAssembler(clock)

	normalizer := collectibles.NewNormalizer(
		openseaClient,
		metaplexClient,
		openseaAdapter,
		metaplexAdapter,
		assembler,
		dataStore,
		publisher,
		clock,
		collectibles.Config{
			MaxWorkers:   cfg.Normalizer.MaxWorkers,
			MaxQueueSize: cfg.Normalizer.MaxQueueSize,
			CacheTTL:     cfg.Normalizer.CacheTTL,
		},
	)

	// HTTP server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Server.JWTPublicKey,
			APIKeys:      cfg.Server.APIKeys,
		},
	}, normalizer, frames, clock)

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
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Fresh context for shutdown since the main one is canceled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
