package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces dashboard keys on shared Redis instances.
const keyPrefix = "courtside:"

const redisDialTimeout = 5 * time.Second

// Redis is the shared backend, also compatible with Valkey.
type Redis struct {
	client     *redis.Client
	defaultTTL time.Duration
	hits       int64
	misses     int64
}

// NewRedis connects to the configured instance and verifies it with a
// ping before handing the cache out.
func NewRedis(cfg Config) (*Redis, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:6379"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisDialTimeout,
		WriteTimeout: redisDialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache: redis connect %s: %w", addr, err)
	}

	return &Redis{client: client, defaultTTL: ttl}, nil
}

func (r *Redis) key(key string) string { return keyPrefix + key }

// Get retrieves a value, mapping redis.Nil onto the miss error.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		atomic.AddInt64(&r.misses, 1)
		if err == redis.Nil {
			return nil, fmt.Errorf("cache: key not found: %s", key)
		}
		return nil, fmt.Errorf("cache: get %s: %w", key, err)
	}
	atomic.AddInt64(&r.hits, 1)
	return val, nil
}

// Set stores a value with a TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	return r.client.Set(ctx, r.key(key), value, ttl).Err()
}

// Delete removes a value.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Exists checks if a key is present.
func (r *Redis) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Clear removes all keys matching pattern, batching deletes behind a
// SCAN so a wide clear never blocks the server.
func (r *Redis) Clear(ctx context.Context, pattern string) error {
	iter := r.client.Scan(ctx, 0, r.key(pattern), 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= 100 {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return r.client.Del(ctx, batch...).Err()
	}
	return nil
}

// Close releases the connection pool.
func (r *Redis) Close() error { return r.client.Close() }

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Stats reports counters plus the server-side key count.
func (r *Redis) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		Hits:      atomic.LoadInt64(&r.hits),
		Misses:    atomic.LoadInt64(&r.misses),
		Connected: true,
		Backend:   "redis",
	}
	if err := r.Ping(ctx); err != nil {
		stats.Connected = false
		return stats, nil
	}
	if size, err := r.client.DBSize(ctx).Result(); err == nil {
		stats.Keys = size
	}
	return stats, nil
}
