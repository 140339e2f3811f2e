// Command server runs the Barcraft back-office API: authentication, gallery
// review, and lead intake for the three sub-brands.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/barcraft/backoffice/docs"
	"github.com/barcraft/backoffice/internal/api"
	"github.com/barcraft/backoffice/internal/core/service"
	mongodb "github.com/barcraft/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/barcraft/backoffice/internal/infrastructure/db/redis"
	"github.com/barcraft/backoffice/internal/infrastructure/queue"
	"github.com/barcraft/backoffice/internal/pkg/config"
	"github.com/barcraft/backoffice/internal/token"
	"github.com/barcraft/backoffice/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                      Barcraft Back-Office API
// @version                    1.0
// @description                Authentication, gallery review, and lead intake for the Barcraft sub-brands.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores (opened once here, closed on shutdown) ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Core wiring ---
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	revocations := redisdb.NewRevocationList(rdb)

	userRepo := mongodb.NewUserRepository(db)
	galleryRepo := mongodb.NewGalleryRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)

	authService := service.NewAuthService(userRepo, tokens, revocations, log)
	galleryService := service.NewGalleryService(galleryRepo, log)
	leadService := service.NewLeadService(leadRepo, redisdb.NewSignupDedup(rdb), log)

	dispatcher := queue.NewDispatcher(cfg.Workers, leadService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:             db,
		Redis:          rdb,
		Tokens:         tokens,
		AuthService:    authService,
		GalleryService: galleryService,
		LeadService:    leadService,
		LeadQueue:      dispatcher,
		Revocations:    revocations,
		Log:            log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
