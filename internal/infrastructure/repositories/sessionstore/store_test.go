//go:build unit

package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depocheck/config"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/sessionstore"
)

func TestNewStore(t *testing.T) {
	t.Parallel()

	t.Run("should default to the in-memory store", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.Default().Session

		// when
		store, closer, err := sessionstore.NewStore(context.Background(), cfg)

		// then
		require.NoError(t, err)
		assert.IsType(t, &memstore.MemStore{}, store)
		require.NoError(t, closer.Close())
	})

	t.Run("should reject an unknown store", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.SessionConfig{Store: "etcd"}

		// when
		_, _, err := sessionstore.NewStore(context.Background(), cfg)

		// then
		require.Error(t, err)
	})

	t.Run("should fail fast when redis is unreachable", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.SessionConfig{Store: config.StoreRedis, RedisAddr: "127.0.0.1:1"}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// when
		_, _, err := sessionstore.NewStore(ctx, cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "127.0.0.1:1")
	})
}

func TestNewManager(t *testing.T) {
	t.Parallel()

	t.Run("should apply lifetime and cookie settings", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.Default()
		cfg.Server.CookieSecure = true
		cfg.Session.Lifetime = time.Hour

		// when
		manager := sessionstore.NewManager(memstore.New(), cfg)

		// then
		assert.Equal(t, time.Hour, manager.Lifetime)
		assert.True(t, manager.Cookie.Secure)
		assert.True(t, manager.Cookie.HttpOnly)
	})
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	t.Run("should surface connection failures as errors", func(t *testing.T) {
		t.Parallel()

		// given
		client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: time.Second})
		defer client.Close()
		store := sessionstore.NewRedisStore(client)

		// when
		_, found, err := store.Find("tok")

		// then
		require.Error(t, err)
		assert.False(t, found)
	})

	t.Run("should delete instead of writing an already expired session", func(t *testing.T) {
		t.Parallel()

		// given
		client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: time.Second})
		defer client.Close()
		store := sessionstore.NewRedisStore(client)

		// when
		err := store.Commit("tok", []byte("payload"), time.Now().Add(-time.Minute))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete session")
	})
}
