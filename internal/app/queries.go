package app

import (
	"context"
	"fmt"
	"time"

	"stayhub/internal/domain"
)

// PropertyQueryService serves property lookups, cache-aside when a cache is configured.
type PropertyQueryService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewPropertyQueryService accepts a nil cache.
func NewPropertyQueryService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *PropertyQueryService {
	return &PropertyQueryService{repo: r, cache: c, cacheTTL: ttl}
}

func propertyKey(id string) string { return fmt.Sprintf("property:%s", id) }

func (s *PropertyQueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	if !ValidPropertyID(id) {
		return domain.Property{}, domain.ErrNotFound
	}
	key := propertyKey(id)
	if s.cache != nil {
		var p domain.Property
		if ok, _ := s.cache.Get(ctx, key, &p); ok {
			return p, nil
		}
	}
	p, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	}
	return p, nil
}
