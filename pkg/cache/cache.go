// Package cache provides TTL memoization for provider responses. Every cached
// value is stored with an explicit expiry; the only invalidation is expiry.
package cache

import (
	"context"
	"sync"
	"time"

	"shutterplan/pkg/db"
)

// Cacher defines the caching interface.
type Cacher interface {
	GetCache(ctx context.Context, key string) ([]byte, bool)
	SetCache(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// SQLiteCache implements Cacher on top of pkg/db.
type SQLiteCache struct {
	db *db.DB
}

// NewSQLiteCache creates a new SQLite-backed cache.
func NewSQLiteCache(d *db.DB) *SQLiteCache {
	return &SQLiteCache{db: d}
}

const sqliteTimeFormat = "2006-01-02 15:04:05"

// GetCache returns the cached value for key if present and unexpired.
func (c *SQLiteCache) GetCache(ctx context.Context, key string) ([]byte, bool) {
	var val []byte
	var expiresAt string
	row := c.db.QueryRowContext(ctx, "SELECT value, expires_at FROM cache WHERE key = ?", key)
	if err := row.Scan(&val, &expiresAt); err != nil {
		return nil, false
	}
	exp, err := time.ParseInLocation(sqliteTimeFormat, expiresAt, time.UTC)
	if err != nil || time.Now().UTC().After(exp) {
		return nil, false
	}
	return val, true
}

// SetCache stores val under key with the given TTL, replacing any entry.
func (c *SQLiteCache) SetCache(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	exp := time.Now().UTC().Add(ttl).Format(sqliteTimeFormat)
	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache (key, value, expires_at) VALUES (?, ?, ?)",
		key, val, exp)
	return err
}

// MemoryCache is an in-process Cacher used in tests and as a fallback when no
// database path is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memEntry
}

type memEntry struct {
	val     []byte
	expires time.Time
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memEntry)}
}

func (c *MemoryCache) GetCache(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.val, true
}

func (c *MemoryCache) SetCache(_ context.Context, key string, val []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memEntry{val: val, expires: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
