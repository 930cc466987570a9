package store

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// Redis is the Store backend for shared deployments. Every Set publishes a
// change signal on a per-key channel so concurrently running instances can
// re-read instead of serving stale collections.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	return data, err
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}
	if err := r.client.Publish(ctx, changeChannel(key), "changed").Err(); err != nil {
		log.Printf("[STORE] publish change signal for %s failed: %v", key, err)
	}
	return nil
}

func (r *Redis) Subscribe(key string, fn func()) {
	ps := r.client.Subscribe(context.Background(), changeChannel(key))
	go func() {
		for range ps.Channel() {
			fn()
		}
	}()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func changeChannel(key string) string {
	return key + ":changed"
}
