package hitpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories"
	"github.com/redis/go-redis/v9"
)

const defaultMaxRetries = 10

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client     redis.UniversalClient
	MaxRetries int // optimistic-lock attempts per Update (default: 10)
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client     redis.UniversalClient
	maxRetries int
}

// NewRedis creates a Redis-backed repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// NewRedisRepository creates a new Redis-backed hit point repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}

	return &redisRepo{
		client:     cfg.Client,
		maxRetries: retries,
	}
}

// key generates the Redis key for a record
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("hp:%s", id)
}

// Get retrieves a record by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*hitpoints.Record, error) {
	if err := repositories.RequireID(id); err != nil {
		return nil, err
	}

	payload, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.NewRecordNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hit point record: %w", err)
	}

	return unmarshalRecord(payload)
}

// Put creates or overwrites a record
func (r *redisRepo) Put(ctx context.Context, record *hitpoints.Record) error {
	if record == nil {
		return dnderr.InvalidArgument("hit point record cannot be nil")
	}
	if err := repositories.RequireID(record.ID); err != nil {
		return err
	}

	payload, err := marshalRecord(record)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(record.ID), string(payload), 0).Err(); err != nil {
		return fmt.Errorf("failed to store hit point record: %w", err)
	}
	return nil
}

// Update runs load-mutate-store under WATCH so a concurrent write to the same
// key aborts the transaction, which is then retried from a fresh load.
func (r *redisRepo) Update(ctx context.Context, id string, mutate MutateFunc) (*hitpoints.Record, error) {
	if err := repositories.RequireID(id); err != nil {
		return nil, err
	}

	key := r.key(id)
	var updated *hitpoints.Record

	txf := func(tx *redis.Tx) error {
		payload, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return repositories.NewRecordNotFoundError(id)
		}
		if err != nil {
			return fmt.Errorf("failed to get hit point record: %w", err)
		}

		current, err := unmarshalRecord(payload)
		if err != nil {
			return err
		}

		next, err := mutate(current)
		if err != nil {
			return err
		}
		if err := checkMutation(id, next); err != nil {
			return err
		}

		nextPayload, err := marshalRecord(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, string(nextPayload), 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = next
		return nil
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, dnderr.Unavailablef("hit point record '%s' changed concurrently %d times", id, r.maxRetries).
		WithMeta("record_id", id)
}

// Delete removes a record
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if err := repositories.RequireID(id); err != nil {
		return err
	}

	removed, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete hit point record: %w", err)
	}
	if removed == 0 {
		return repositories.NewRecordNotFoundError(id)
	}
	return nil
}

// Ping checks the Redis connection
func (r *redisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
