// Package memory holds volatile stores that live for the lifetime of the process.
package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"stayhub/internal/domain"
)

// ReviewStore keeps reviews per property, newest first. Everything appended is
// lost when the process exits.
type ReviewStore struct {
	mu    sync.RWMutex
	items map[string][]domain.Review
	seq   atomic.Uint64
	now   func() time.Time
}

func NewReviewStore(seeded map[string][]domain.Review) *ReviewStore {
	s := &ReviewStore{items: make(map[string][]domain.Review, len(seeded)), now: time.Now}
	for pid, rs := range seeded {
		s.items[pid] = append([]domain.Review(nil), rs...)
	}
	return s
}

// SetClock replaces the time source used for ids and dates.
func (s *ReviewStore) SetClock(now func() time.Time) { s.now = now }

// ListReviews returns a copy; an unknown property yields an empty slice.
func (s *ReviewStore) ListReviews(_ context.Context, propertyID string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.items[propertyID]))
	copy(out, s.items[propertyID])
	return out, nil
}

func (s *ReviewStore) AppendReview(_ context.Context, propertyID string, in domain.NewReview) (domain.Review, error) {
	now := s.now().UTC()
	rv := domain.Review{
		ID:         fmt.Sprintf("rev-%d-%d", now.UnixMilli(), s.seq.Add(1)),
		UserID:     in.UserID,
		UserName:   in.UserName,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Date:       now.Format(domain.DateLayout),
		UserAvatar: in.UserAvatar,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.items[propertyID]
	next := make([]domain.Review, 0, len(cur)+1)
	next = append(next, rv)
	s.items[propertyID] = append(next, cur...)
	return rv, nil
}
