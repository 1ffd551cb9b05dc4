package kv

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	conn *redis.Client
}

// NewRedis connects using a redis:// URL, e.g. redis://localhost:6379/0.
func NewRedis(url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &Redis{conn: redis.NewClient(opts)}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNoValue
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.conn.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Close() error {
	return r.conn.Close()
}
