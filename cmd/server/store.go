package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Cameron637/ddb-backend-developer-challenge/internal/config"
	hitpointsRepo "github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories/hitpoints"
)

const connectTimeout = 5 * time.Second

// openStore builds the configured repository. The returned close function
// releases its connections.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (hitpointsRepo.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		return openRedis(ctx, cfg.Redis, logger)
	case config.StorePostgres:
		return openPostgres(ctx, cfg.Postgres, logger)
	default:
		logger.Info("using in-memory store")
		return hitpointsRepo.NewInMemoryRepository(), func() {}, nil
	}
}

func openRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (hitpointsRepo.Repository, func(), error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}

	logger.Info("using redis store", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))

	repo := hitpointsRepo.NewRedisRepository(&hitpointsRepo.RedisRepoConfig{
		Client:     client,
		MaxRetries: cfg.MaxRetries,
	})
	return repo, func() {
		if err := client.Close(); err != nil {
			logger.Warn("closing redis client", zap.Error(err))
		}
	}, nil
}

func openPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (hitpointsRepo.Repository, func(), error) {
	if cfg.Migrate {
		if err := hitpointsRepo.Migrate(cfg.DSN); err != nil {
			return nil, nil, err
		}
		logger.Info("postgres migrations applied")
	}

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("creating postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	logger.Info("using postgres store", zap.String("host", pool.Config().ConnConfig.Host))

	return hitpointsRepo.NewPostgresRepository(pool), pool.Close, nil
}
