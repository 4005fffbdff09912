package memory

import (
	"context"
	"sync"

	"stayhub/internal/domain"
)

type BookingStore struct {
	mu    sync.Mutex
	items []domain.Booking
}

func NewBookingStore() *BookingStore { return &BookingStore{} }

func (s *BookingStore) SaveBooking(_ context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, b)
	return nil
}

// Bookings returns a snapshot of everything saved so far.
func (s *BookingStore) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Booking(nil), s.items...)
}
