package client

import "sync"

// Cached collections. Mutations drop whole entities, never single keys.
const (
	entityUser       = "user"
	entityUnits      = "units"
	entityProperties = "properties"
	entityTenants    = "tenants"
	entityLeases     = "leases"
)

type queryCache struct {
	mu      sync.Mutex
	entries map[string]map[string]any
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[string]map[string]any)}
}

func (c *queryCache) get(entity, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[entity][key]
	return v, ok
}

func (c *queryCache) put(entity, key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[entity] == nil {
		c.entries[entity] = make(map[string]any)
	}
	c.entries[entity][key] = v
}

func (c *queryCache) invalidate(entities ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range entities {
		delete(c.entries, e)
	}
}

func (c *queryCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]map[string]any)
}
