package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper records successful scan emissions so a ticket that stays overdue
// across consecutive passes produces one notification per (ticket, type,
// day), not one per pass. Checking and recording are separate so a failed
// emit leaves the key unmarked and the next pass retries it.
type Deduper interface {
	// Seen reports whether the key has already been recorded.
	Seen(ctx context.Context, key string) (bool, error)
	// Mark records the key after a successful emit.
	Mark(ctx context.Context, key string) error
}

// RedisDeduper keys emissions in redis with a TTL slightly longer than a
// day, so keys expire on their own once the day they guard has passed.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduper creates the deduper.
func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	if ttl <= 0 {
		ttl = 36 * time.Hour
	}
	return &RedisDeduper{client: client, ttl: ttl}
}

// Seen checks key presence without touching it.
func (d *RedisDeduper) Seen(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Mark sets the key with the configured TTL.
func (d *RedisDeduper) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, key, 1, d.ttl).Err()
}

// MemoryDeduper is a process-local Deduper used in tests and when redis is
// unavailable. Keys are never expired; acceptable for short-lived use.
type MemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMemoryDeduper creates the deduper.
func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{seen: make(map[string]struct{})}
}

// Seen reports prior presence.
func (d *MemoryDeduper) Seen(_ context.Context, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[key]
	return ok, nil
}

// Mark records the key.
func (d *MemoryDeduper) Mark(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[key] = struct{}{}
	return nil
}
