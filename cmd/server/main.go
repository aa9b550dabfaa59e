package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vigilia/contracts-api/internal/api"
	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/infrastructure/config"
	mongodb "github.com/vigilia/contracts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vigilia/contracts-api/internal/infrastructure/db/redis"
	"github.com/vigilia/contracts-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := ensureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare mongo collections")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	broker := app.NewBroker(log)
	controller := app.NewController(redisdb.NewSessionStore(rdb), log)
	go controller.Run(ctx, broker.Subscribe())

	e := api.NewRouter(db, rdb, broker, cfg.JWTSecret, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := e.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting contracts service")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}

// ensureSchema creates the indexes each repository relies on and seeds the
// service catalog on first boot.
func ensureSchema(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewAddressRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewContractRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewCatalogRepository(db).SeedIfEmpty(ctx)
}
