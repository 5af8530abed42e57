package client

import "sync"

// queryCache memoizes one value per resource key so repeated reads hit the
// network once. Mutations call Invalidate for their key.
type queryCache struct {
	mu      sync.Mutex
	entries map[string]any
}

func newQueryCache() *queryCache {
	return &queryCache{entries: map[string]any{}}
}

func (c *queryCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *queryCache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

func (c *queryCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
