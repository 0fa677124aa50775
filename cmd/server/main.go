// Command server runs the studio CMS API: the public marketing endpoints
// and the staff dashboard behind them.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/atelier-interiors/studio-api/internal/api"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
	"github.com/atelier-interiors/studio-api/internal/infrastructure/config"
	mongodb "github.com/atelier-interiors/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/atelier-interiors/studio-api/internal/infrastructure/db/redis"
	"github.com/atelier-interiors/studio-api/internal/infrastructure/email"
	"github.com/atelier-interiors/studio-api/internal/infrastructure/storage"
	"github.com/atelier-interiors/studio-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Document store ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Render cache ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Email relay: fall back to log-only delivery when no relay is
	// configured so local development does not need an SMTP server. ---
	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		mailer, err = email.NewSender(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("email sender configuration failed")
		}
	} else {
		log.Warn().Msg("SMTP_HOST not set, contact notifications go to the log only")
		mailer = email.NewLogMailer(log)
	}

	// --- Image host ---
	store, err := storage.NewS3Store(ctx, storage.Config{
		Endpoint:      cfg.S3.Endpoint,
		Region:        cfg.S3.Region,
		AccessKey:     cfg.S3.AccessKey,
		SecretKey:     cfg.S3.SecretKey,
		Bucket:        cfg.S3.Bucket,
		PublicBaseURL: cfg.S3.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("object store configuration failed")
	}

	e := api.NewRouter(api.Options{
		DB:            db,
		Redis:         rdb,
		Mailer:        mailer,
		Store:         store,
		JWTSecret:     cfg.JWTSecret,
		SecureCookies: cfg.Production(),
		MailFrom:      cfg.SMTP.From,
		NotifyTo:      cfg.SMTP.NotifyTo,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
