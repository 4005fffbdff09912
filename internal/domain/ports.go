package domain

import "context"

// ReviewStore owns the property -> reviews mapping. Implementations keep the
// newest review first and never mutate or drop existing entries.
type ReviewStore interface {
	ListReviews(ctx context.Context, propertyID string) ([]Review, error)
	AppendReview(ctx context.Context, propertyID string, r NewReview) (Review, error)
}

type PropertyRepository interface {
	GetProperty(ctx context.Context, id string) (Property, error)
}

// PropertyWriter is implemented by catalogs that can be loaded from seed data.
type PropertyWriter interface {
	UpsertProperty(ctx context.Context, p Property) error
}

type BookingStore interface {
	SaveBooking(ctx context.Context, b Booking) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
