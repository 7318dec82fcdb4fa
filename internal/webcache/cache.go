package webcache

import (
	"sync"
)

type entry struct {
	contentType string
	body        []byte
}

// Cache keeps rendered route bodies so repeat listing requests skip the
// database. Mutations invalidate the route they touched; there is no TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

func (c *Cache) Get(route string) ([]byte, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[route]
	if !ok {
		return nil, "", false
	}
	return e.body, e.contentType, true
}

func (c *Cache) Set(route, contentType string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[route] = entry{contentType: contentType, body: body}
}

// Invalidate marks the route's cached render stale by dropping it.
func (c *Cache) Invalidate(route string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, route)
}
