package cache

import (
	"context"
	"testing"
	"time"
)

func TestLRUCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				time.Sleep(60 * time.Millisecond)
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				c.Set(ctx, "c", []byte("3"))
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get(ctx, "b"); !ok || string(v) != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get(ctx, "c"); !ok || string(v) != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Del(ctx, "a")
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key 'a' to be deleted")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache, size=%d", c.Size())
				}
			},
		},
		{
			name:     "recently used survives eviction",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				c.Get(ctx, "a")
				c.Set(ctx, "c", []byte("3"))
				if _, ok := c.Get(ctx, "a"); !ok {
					t.Errorf("expected key 'a' to survive")
				}
				if _, ok := c.Get(ctx, "b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewLRUCache(tc.capacity, tc.ttl)
			tc.actions(c, t)
		})
	}
}
