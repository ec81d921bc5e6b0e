package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"shutterplan/pkg/db"
)

func TestSQLiteCacheRoundTrip(t *testing.T) {
	d, err := db.Init(filepath.Join(t.TempDir(), "cache_test.db"))
	if err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}
	defer d.Close()
	c := NewSQLiteCache(d)
	ctx := context.Background()

	if _, hit := c.GetCache(ctx, "missing"); hit {
		t.Error("expected miss for unknown key")
	}

	if err := c.SetCache(ctx, "k", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("SetCache failed: %v", err)
	}
	val, hit := c.GetCache(ctx, "k")
	if !hit {
		t.Fatal("expected hit after SetCache")
	}
	if string(val) != "payload" {
		t.Errorf("value = %q, want %q", val, "payload")
	}
}

func TestSQLiteCacheExpiry(t *testing.T) {
	d, err := db.Init(filepath.Join(t.TempDir(), "cache_test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	c := NewSQLiteCache(d)
	ctx := context.Background()

	// Already-expired entry must miss.
	if err := c.SetCache(ctx, "stale", []byte("x"), -time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, hit := c.GetCache(ctx, "stale"); hit {
		t.Error("expected miss for expired entry")
	}

	if err := d.PruneCache(); err != nil {
		t.Errorf("PruneCache failed: %v", err)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.SetCache(ctx, "k", []byte("v"), 50*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if val, hit := c.GetCache(ctx, "k"); !hit || string(val) != "v" {
		t.Errorf("got (%q, %v), want (v, true)", val, hit)
	}

	time.Sleep(80 * time.Millisecond)
	if _, hit := c.GetCache(ctx, "k"); hit {
		t.Error("expected miss after TTL expiry")
	}
}
