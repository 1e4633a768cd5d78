package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/roamly/booking-api/internal/api"
	"github.com/roamly/booking-api/internal/core/service"
	"github.com/roamly/booking-api/internal/core/token"
	"github.com/roamly/booking-api/internal/infrastructure/config"
	mongodb "github.com/roamly/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/roamly/booking-api/internal/infrastructure/db/redis"
	"github.com/roamly/booking-api/internal/infrastructure/queue"
	"github.com/roamly/booking-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// An unset signing secret is a fatal misconfiguration: refuse to boot
	// rather than serve protected routes that cannot verify anything.
	tokens, err := token.New(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return err
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	auditLog := logger.Component("audit")
	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), auditLog)
	dispatcher := queue.NewDispatcher(0, auditService, auditLog)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:            db,
		Redis:         rdb,
		Tokens:        tokens,
		Audit:         dispatcher,
		SecureCookies: !cfg.IsDevelopment(),
		Logger:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("booking api listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}
