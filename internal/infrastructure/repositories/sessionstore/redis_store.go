package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "depocheck:session:"

// RedisStore is an scs.Store keeping browser sessions in redis. Expiry is
// left to redis key TTLs.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var (
	_ scs.Store    = (*RedisStore)(nil)
	_ scs.CtxStore = (*RedisStore)(nil)
)

// NewRedisStore creates a store over client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, prefix: redisKeyPrefix}
}

func (it *RedisStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	data, err := it.client.Get(ctx, it.prefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to find session: %w", err)
	}
	return data, true, nil
}

func (it *RedisStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return it.DeleteCtx(ctx, token)
	}
	if err := it.client.Set(ctx, it.prefix+token, b, ttl).Err(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func (it *RedisStore) DeleteCtx(ctx context.Context, token string) error {
	if err := it.client.Del(ctx, it.prefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (it *RedisStore) Find(token string) ([]byte, bool, error) {
	return it.FindCtx(context.Background(), token)
}

func (it *RedisStore) Commit(token string, b []byte, expiry time.Time) error {
	return it.CommitCtx(context.Background(), token, b, expiry)
}

func (it *RedisStore) Delete(token string) error {
	return it.DeleteCtx(context.Background(), token)
}
