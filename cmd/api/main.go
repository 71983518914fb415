package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CAR-dano/cardano-backend-sub000/config"
	"github.com/CAR-dano/cardano-backend-sub000/internal/adapter/chain/blockfrost"
	"github.com/CAR-dano/cardano-backend-sub000/internal/adapter/chain/signer"
	httpHandler "github.com/CAR-dano/cardano-backend-sub000/internal/adapter/http/handler"
	pgStorage "github.com/CAR-dano/cardano-backend-sub000/internal/adapter/storage/postgres"
	redisStorage "github.com/CAR-dano/cardano-backend-sub000/internal/adapter/storage/redis"
	"github.com/CAR-dano/cardano-backend-sub000/internal/cardano"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"
	"github.com/CAR-dano/cardano-backend-sub000/internal/service"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/keymutex"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("network", cfg.Cardano.Network).
		Msg("Starting inspection minting backend")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	inspectionRepo := pgStorage.NewInspectionRepo(pool)
	mintRecordRepo := pgStorage.NewMintRecordRepo(pool)

	// Chain provider and signing key
	provider := blockfrost.New(cfg.Cardano, &http.Client{Timeout: cfg.Cardano.HTTPTimeout}, log)
	txSigner, err := signer.New(cfg.Cardano.SigningKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load signing key")
	}

	// Serializing lock for the minting wallet. The Redis lease lock keeps
	// replicas from spending the same outputs when more than one instance
	// runs against one wallet; single-instance deployments can opt into the
	// in-process locker instead.
	var addrLock ports.AddressLocker
	if cfg.Minting.LockMode == "local" {
		addrLock = keymutex.New()
	} else {
		addrLock = redisStorage.NewAddressLock(rdb, 2*time.Minute)
	}

	// Minting pipeline
	selector := cardano.NewSelector(provider, cfg.Minting.MinUTXOLovelace, log)
	builder := cardano.NewBuilder(cardano.DefaultProtocolParams())
	mintSvc := service.NewMintService(
		provider,
		txSigner,
		addrLock,
		selector,
		builder,
		cfg.Cardano.WalletAddress,
		cfg.Minting,
		log,
	)

	// Business services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	inspectionSvc := service.NewInspectionService(inspectionRepo, mintRecordRepo, mintSvc, log)
	chainReadSvc := service.NewChainReadService(provider)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		InspectionSvc:  inspectionSvc,
		ChainReadSvc:   chainReadSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		RateLimit:      redisStorage.NewRateLimitStore(rdb),
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
