// Package cache keeps raw API responses in memory for a short while so that
// repeating a lookup in the same session does not hit the network again.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	body    []byte
	expires time.Time
}

// Cache maps request URLs to response bodies. Each entry expires ttl after it was stored.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the body stored under key if it has not expired. An expired
// entry is dropped.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.body, true
}

// Set stores body under key and drops every expired entry.
func (c *Cache) Set(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = entry{
		body:    append([]byte(nil), body...),
		expires: now.Add(c.ttl),
	}
}
