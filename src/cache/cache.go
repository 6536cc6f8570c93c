// Package cache provides the TTL cache in front of the data service:
// a process-local memory backend by default, or a shared Redis/Valkey
// backend so several dashboards on one box reuse the same responses.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache is the interface both backends implement.
type Cache interface {
	// Get retrieves a value, erroring on miss or expiry.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value with a TTL; ttl <= 0 uses the default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes a value.
	Delete(ctx context.Context, key string) error
	// Exists checks if a key is present and unexpired.
	Exists(ctx context.Context, key string) (bool, error)
	// Clear removes all keys matching a glob-ish pattern.
	Clear(ctx context.Context, pattern string) error
	// Close releases the backend.
	Close() error
	// Ping checks backend connectivity.
	Ping(ctx context.Context) error
	// Stats returns backend statistics.
	Stats(ctx context.Context) (*Stats, error)
}

// Stats reports cache health for the doctor command.
type Stats struct {
	Hits       int64  `json:"hits"`
	Misses     int64  `json:"misses"`
	Keys       int64  `json:"keys"`
	MemoryUsed int64  `json:"memory_used"`
	Connected  bool   `json:"connected"`
	Backend    string `json:"backend"`
}

// Config selects and tunes a backend.
type Config struct {
	Backend  string // memory, redis
	Addr     string // redis host:port
	Password string
	DB       int
	TTL      time.Duration // default entry lifetime
	MaxSize  int           // memory backend item cap
}

// New builds a cache from configuration. Anything but an explicit
// redis backend gets the memory cache, so the dashboard always has a
// working cache even with an empty config.
func New(cfg Config) (Cache, error) {
	if cfg.Backend == "redis" {
		return NewRedis(cfg)
	}
	return NewMemory(cfg.MaxSize, cfg.TTL), nil
}

// GetJSON retrieves and unmarshals a cached JSON value.
func GetJSON(ctx context.Context, c Cache, key string, v interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// SetJSON marshals and stores a JSON value.
func SetJSON(ctx context.Context, c Cache, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}
