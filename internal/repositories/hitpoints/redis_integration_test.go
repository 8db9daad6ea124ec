//go:build integration
// +build integration

package hitpoints_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hpdomain "github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories/hitpoints"
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := hitpoints.NewRedisRepository(&hitpoints.RedisRepoConfig{
		Client:     client,
		MaxRetries: 100,
	})

	exerciseRepository(t, repo)
}

// exerciseRepository runs the behaviour every durable store must share.
func exerciseRepository(t *testing.T, repo hitpoints.Repository) {
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	t.Run("put and get", func(t *testing.T) {
		briv := testutils.CreateBriv()
		require.NoError(t, repo.Put(ctx, briv))

		got, err := repo.Get(ctx, "briv")
		require.NoError(t, err)
		assert.Equal(t, briv, got)
	})

	t.Run("update applies damage", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, testutils.CreateBriv()))

		updated, err := repo.Update(ctx, "briv", func(current *hpdomain.Record) (*hpdomain.Record, error) {
			return hpdomain.DealDamage(current, []hpdomain.Damage{
				{Type: hpdomain.DamageTypeFire, Amount: 10},
				{Type: hpdomain.DamageTypeSlashing, Amount: 10},
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 20, updated.Current)

		stored, err := repo.Get(ctx, "briv")
		require.NoError(t, err)
		assert.Equal(t, 20, stored.Current)
	})

	t.Run("values past int32 round trip", func(t *testing.T) {
		giant := testutils.CreateTestRecord("giant", math.MaxInt32+1)
		giant.Temporary = math.MaxInt
		require.NoError(t, repo.Put(ctx, giant))

		updated, err := repo.Update(ctx, "giant", func(current *hpdomain.Record) (*hpdomain.Record, error) {
			return hpdomain.Heal(current, math.MaxInt)
		})
		require.NoError(t, err)
		assert.Equal(t, giant, updated)

		stored, err := repo.Get(ctx, "giant")
		require.NoError(t, err)
		assert.Equal(t, giant, stored)
	})

	t.Run("update of missing record", func(t *testing.T) {
		_, err := repo.Update(ctx, "ghost", func(current *hpdomain.Record) (*hpdomain.Record, error) {
			return current, nil
		})
		assert.True(t, dnderr.IsNotFound(err))

		_, err = repo.Get(ctx, "ghost")
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("concurrent updates are not lost", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, testutils.CreateTestRecord("crowd", 500)))

		const workers = 20
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, "crowd", func(current *hpdomain.Record) (*hpdomain.Record, error) {
					return hpdomain.DealDamage(current, []hpdomain.Damage{{Type: hpdomain.DamageTypeAcid, Amount: 5}})
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repo.Get(ctx, "crowd")
		require.NoError(t, err)
		assert.Equal(t, 500-workers*5, stored.Current)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, testutils.CreateTestRecord("gone", 5)))
		require.NoError(t, repo.Delete(ctx, "gone"))

		err := repo.Delete(ctx, "gone")
		assert.True(t, dnderr.IsNotFound(err))
	})
}
