package app

import (
	"context"
	"fmt"

	"stayhub/internal/domain"
)

// CatalogLoader writes seed properties into a catalog and evicts stale cache entries.
type CatalogLoader struct {
	repo  domain.PropertyWriter
	cache domain.Cache
}

func NewCatalogLoader(r domain.PropertyWriter, cache domain.Cache) *CatalogLoader {
	return &CatalogLoader{repo: r, cache: cache}
}

func (l *CatalogLoader) LoadProperty(ctx context.Context, p domain.Property) error {
	if !ValidPropertyID(p.ID) {
		return domain.NewValidationError(fmt.Sprintf("invalid property id %q", p.ID))
	}
	if p.Title == "" {
		return domain.NewValidationError(fmt.Sprintf("property %s has no title", p.ID))
	}
	if err := l.repo.UpsertProperty(ctx, p); err != nil {
		return fmt.Errorf("upsert property %s: %w", p.ID, err)
	}
	// evict so the API never serves the previous snapshot
	if l.cache != nil {
		_ = l.cache.Del(ctx, propertyKey(p.ID))
	}
	return nil
}
