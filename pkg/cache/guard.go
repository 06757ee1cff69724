package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrGuardHeld is returned when a key already has an in-flight holder.
var ErrGuardHeld = errors.New("submission already in flight")

// Guard admits at most one holder per key at a time. Entries expire after the
// guard's TTL so a crashed holder cannot block a key forever.
type Guard interface {
	// TryAcquire returns a release token, or ErrGuardHeld when key is taken.
	TryAcquire(ctx context.Context, key string) (string, error)
	// Release frees key if token still owns it.
	Release(ctx context.Context, key, token string) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	Name() string
}

type RedisGuard struct {
	cache  *RedisCache
	prefix string
	ttl    time.Duration
}

func NewRedisGuard(cache *RedisCache, prefix string, ttl time.Duration) *RedisGuard {
	return &RedisGuard{cache: cache, prefix: prefix, ttl: ttl}
}

func (g *RedisGuard) TryAcquire(ctx context.Context, key string) (string, error) {
	token := uuid.NewString()
	ok, err := g.cache.SetNX(ctx, g.prefix+key, token, g.ttl)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrGuardHeld
	}
	return token, nil
}

func (g *RedisGuard) Release(ctx context.Context, key, token string) error {
	_, err := g.cache.DeleteIfValue(ctx, g.prefix+key, token)
	return err
}

func (g *RedisGuard) Ping(ctx context.Context) error {
	return g.cache.Ping(ctx)
}

func (g *RedisGuard) Name() string {
	return "redis"
}

type memoryEntry struct {
	token   string
	expires time.Time
}

type MemoryGuard struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	return &MemoryGuard{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (g *MemoryGuard) TryAcquire(ctx context.Context, key string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if entry, ok := g.entries[key]; ok && (g.ttl <= 0 || now.Before(entry.expires)) {
		return "", ErrGuardHeld
	}

	token := uuid.NewString()
	g.entries[key] = memoryEntry{token: token, expires: now.Add(g.ttl)}
	return token, nil
}

func (g *MemoryGuard) Release(ctx context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if entry, ok := g.entries[key]; ok && entry.token == token {
		delete(g.entries, key)
	}
	return nil
}

func (g *MemoryGuard) Ping(ctx context.Context) error {
	return nil
}

func (g *MemoryGuard) Name() string {
	return "memory"
}
