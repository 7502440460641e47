package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Durée de vie des entrées (30 jours, comme un panier e-commerce classique)
const entryTTL = 30 * 24 * time.Hour

// RedisStore persiste chaque entrée comme blob JSON sous "scope:key".
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, scope, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, scope+":"+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisStore) Set(ctx context.Context, scope, key string, data []byte) error {
	return r.client.Set(ctx, scope+":"+key, data, entryTTL).Err()
}

func (r *RedisStore) Delete(ctx context.Context, scope, key string) error {
	return r.client.Del(ctx, scope+":"+key).Err()
}
