package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	defaultMaxSize = 4096
	defaultTTL     = 5 * time.Minute
	sweepInterval  = time.Minute
)

// Memory is the in-process backend. A background sweep drops expired
// entries; reads also expire lazily so the sweep cadence never serves
// stale data.
type Memory struct {
	mu         sync.Mutex
	items      map[string]memoryItem
	maxSize    int
	defaultTTL time.Duration
	hits       int64
	misses     int64
	done       chan struct{}
	closeOnce  sync.Once
}

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory creates a memory cache. Non-positive limits fall back to
// sane defaults.
func NewMemory(maxSize int, ttl time.Duration) *Memory {
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	m := &Memory{
		items:      make(map[string]memoryItem),
		maxSize:    maxSize,
		defaultTTL: ttl,
		done:       make(chan struct{}),
	}
	go m.sweep()
	return m
}

func (m *Memory) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for key, item := range m.items {
				if now.After(item.expiresAt) {
					delete(m.items, key)
				}
			}
			m.mu.Unlock()
		}
	}
}

// Get retrieves a value, expiring it lazily if its TTL has run out.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		m.misses++
		return nil, fmt.Errorf("cache: key not found: %s", key)
	}
	if time.Now().After(item.expiresAt) {
		delete(m.items, key)
		m.misses++
		return nil, fmt.Errorf("cache: key expired: %s", key)
	}
	m.hits++
	return item.value, nil
}

// Set stores a value, evicting the entries closest to expiry when the
// cache is full.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; !exists && len(m.items) >= m.maxSize {
		m.evict()
	}
	m.items[key] = memoryItem{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// evict drops a tenth of the cache, soonest-to-expire first.
func (m *Memory) evict() {
	toRemove := m.maxSize / 10
	if toRemove < 1 {
		toRemove = 1
	}
	for ; toRemove > 0 && len(m.items) > 0; toRemove-- {
		var (
			victim   string
			earliest time.Time
		)
		for key, item := range m.items {
			if victim == "" || item.expiresAt.Before(earliest) {
				victim, earliest = key, item.expiresAt
			}
		}
		delete(m.items, victim)
	}
}

// Delete removes a value.
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Exists checks for a live entry, expiring lazily like Get.
func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return false, nil
	}
	if time.Now().After(item.expiresAt) {
		delete(m.items, key)
		return false, nil
	}
	return true, nil
}

// Clear removes keys matching pattern: "*", "prefix*" or "*suffix".
func (m *Memory) Clear(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if pattern == "*" {
		m.items = make(map[string]memoryItem)
		return nil
	}
	for key := range m.items {
		if matchPattern(pattern, key) {
			delete(m.items, key)
		}
	}
	return nil
}

func matchPattern(pattern, key string) bool {
	switch {
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(key, strings.TrimSuffix(pattern, "*"))
	case strings.HasPrefix(pattern, "*"):
		return strings.HasSuffix(key, strings.TrimPrefix(pattern, "*"))
	default:
		return key == pattern
	}
}

// Close stops the sweeper and drops all entries.
func (m *Memory) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]memoryItem)
	return nil
}

// Ping always succeeds for the memory backend.
func (m *Memory) Ping(ctx context.Context) error { return nil }

// Stats reports counters and an approximate footprint.
func (m *Memory) Stats(ctx context.Context) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var memUsed int64
	for key, item := range m.items {
		memUsed += int64(len(key) + len(item.value))
	}
	return &Stats{
		Hits:       m.hits,
		Misses:     m.misses,
		Keys:       int64(len(m.items)),
		MemoryUsed: memUsed,
		Connected:  true,
		Backend:    "memory",
	}, nil
}
