package memory

import (
	"context"
	"sync"

	"stayhub/internal/domain"
)

// Catalog is the in-memory property catalog used when no MySQL DSN is configured.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]domain.Property
}

func NewCatalog(ps []domain.Property) *Catalog {
	c := &Catalog{items: make(map[string]domain.Property, len(ps))}
	for _, p := range ps {
		c.items[p.ID] = p
	}
	return c
}

func (c *Catalog) GetProperty(_ context.Context, id string) (domain.Property, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.items[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}

func (c *Catalog) UpsertProperty(_ context.Context, p domain.Property) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[p.ID] = p
	return nil
}
