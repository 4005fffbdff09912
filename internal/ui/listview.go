// Package ui holds the client-side review workflow: the review list view,
// the submission form and the signal that connects them.
package ui

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/domain"
)

const MsgLoadFailed = "Failed to load reviews. Please try again later."

type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	default:
		return "error"
	}
}

type ReviewLister interface {
	ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error)
}

// ListSnapshot is everything needed to render the list at one point in time.
type ListSnapshot struct {
	PropertyID string
	State      State
	Reviews    []domain.Review
	Stats      domain.AggregateStats
	Message    string
}

// ListView fetches and holds the reviews of one property at a time.
// Only the most recently started fetch may update the view; older results
// (another property, or a superseded refresh) are dropped.
type ListView struct {
	lister   ReviewLister
	onChange func(ListSnapshot)

	mu         sync.Mutex
	propertyID string
	gen        uint64
	snap       ListSnapshot
	inflight   sync.WaitGroup
}

// NewListView returns an idle view. onChange may be nil; it is called from
// fetch goroutines as well as from the caller's goroutine.
func NewListView(l ReviewLister, onChange func(ListSnapshot)) *ListView {
	return &ListView{lister: l, onChange: onChange}
}

// Show switches the view to propertyID and starts loading it.
func (v *ListView) Show(ctx context.Context, propertyID string) {
	v.mu.Lock()
	v.propertyID = propertyID
	v.mu.Unlock()
	v.load(ctx)
}

// Refresh reloads the current property. Failures are never retried automatically.
func (v *ListView) Refresh(ctx context.Context) { v.load(ctx) }

// Watch reloads whenever n signals the property on display. It subscribes
// before returning; call stop to unsubscribe.
func (v *ListView) Watch(ctx context.Context, n *Notifier) (stop func()) {
	ch, cancel := n.Subscribe()
	ctx, done := context.WithCancel(ctx)
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case pid := <-ch:
				if pid == v.currentProperty() {
					v.Refresh(ctx)
				}
			}
		}
	}()
	return done
}

func (v *ListView) Snapshot() ListSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap
}

// Wait blocks until every started fetch has resolved.
func (v *ListView) Wait() { v.inflight.Wait() }

func (v *ListView) currentProperty() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.propertyID
}

func (v *ListView) load(ctx context.Context) {
	v.mu.Lock()
	v.gen++
	gen, pid := v.gen, v.propertyID
	v.snap = ListSnapshot{PropertyID: pid, State: StateLoading}
	snap := v.snap
	v.inflight.Add(1)
	v.mu.Unlock()
	v.emit(snap)

	go func() {
		defer v.inflight.Done()
		rs, err := v.lister.ListReviews(ctx, pid)
		v.resolve(gen, pid, rs, err)
	}()
}

func (v *ListView) resolve(gen uint64, pid string, rs []domain.Review, err error) {
	v.mu.Lock()
	if gen != v.gen || pid != v.propertyID {
		v.mu.Unlock()
		log.Debug().Str("property_id", pid).Uint64("gen", gen).Msg("stale review list dropped")
		return
	}
	if err != nil {
		v.snap = ListSnapshot{PropertyID: pid, State: StateError, Message: MsgLoadFailed}
		log.Warn().Err(err).Str("property_id", pid).Str("err_type", observability.LabelErr(err)).Msg("load reviews failed")
	} else {
		if rs == nil {
			rs = []domain.Review{}
		}
		v.snap = ListSnapshot{PropertyID: pid, State: StateSuccess, Reviews: rs, Stats: domain.Aggregate(rs)}
	}
	snap := v.snap
	v.mu.Unlock()
	v.emit(snap)
}

func (v *ListView) emit(s ListSnapshot) {
	if v.onChange != nil {
		v.onChange(s)
	}
}
