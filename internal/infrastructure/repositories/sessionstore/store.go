// Package sessionstore provides the durable scs backends of the web dashboard.
package sessionstore

import (
	"context"
	"fmt"
	"io"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/config"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// NewStore builds the scs store selected by cfg.Session.Store. The returned
// closer releases its connections.
func NewStore(ctx context.Context, cfg config.SessionConfig) (scs.Store, io.Closer, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Infof("Storing sessions in redis at %s", cfg.RedisAddr)
		return NewRedisStore(client), client, nil

	case config.StorePostgres:
		db, err := OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		store := NewPostgresStore(db, cleanupInterval)
		logger.Info("Storing sessions in postgres")
		return store, closerFunc(func() error {
			store.StopCleanup()
			return db.Close()
		}), nil

	case config.StoreMemory, "":
		logger.Info("Storing sessions in memory, they will not survive a restart")
		store := memstore.New()
		return store, closerFunc(func() error {
			store.StopCleanup()
			return nil
		}), nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// NewManager configures the scs session manager around store.
func NewManager(store scs.Store, cfg *config.Config) *scs.SessionManager {
	manager := scs.New()
	manager.Store = store
	manager.Lifetime = cfg.Session.Lifetime
	manager.Cookie.Name = "depocheck_session"
	manager.Cookie.HttpOnly = true
	manager.Cookie.Secure = cfg.Server.CookieSecure
	manager.Cookie.Persist = true
	return manager
}
