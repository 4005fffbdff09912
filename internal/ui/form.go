package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"stayhub/internal/domain"
)

const (
	MsgFormIncomplete = "Please provide a rating, your name, and a comment"
	MsgSubmitFailed   = "Failed to submit review. Please try again."
	MsgThanks         = "Thank you for your review!"

	// SuccessDisplay is how long the thank-you acknowledgment stays visible.
	SuccessDisplay = 3 * time.Second
)

var ErrSubmitting = errors.New("ui: submission already in progress")

type ReviewSubmitter interface {
	SubmitReview(ctx context.Context, propertyID string, in domain.NewReview) (domain.Review, error)
}

// Draft is the unsaved review being composed. A zero Rating means none selected.
type Draft struct {
	Rating   int
	Comment  string
	UserName string
}

type FormState struct {
	Draft      Draft
	Submitting bool
	Error      string
	Success    bool
}

// Timer is the part of *time.Timer the form needs.
type Timer interface{ Stop() bool }

// AfterFunc schedules fn after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, fn func()) Timer

func realAfterFunc(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) }

// Form collects a review for one property and submits it.
type Form struct {
	propertyID string
	submitter  ReviewSubmitter
	identity   IdentityProvider
	notifier   *Notifier
	afterFunc  AfterFunc

	mu         sync.Mutex
	draft      Draft
	submitting bool
	errMsg     string
	success    bool
	successSeq uint64
	timer      Timer
}

// NewForm wires a form; notifier may be nil when nothing listens for new reviews.
func NewForm(propertyID string, s ReviewSubmitter, id IdentityProvider, n *Notifier) *Form {
	return &Form{
		propertyID: propertyID,
		submitter:  s,
		identity:   id,
		notifier:   n,
		afterFunc:  realAfterFunc,
	}
}

// SetAfterFunc replaces the scheduler used to hide the acknowledgment.
func (f *Form) SetAfterFunc(fn AfterFunc) { f.afterFunc = fn }

func (f *Form) SetRating(r int) {
	f.mu.Lock()
	f.draft.Rating = r
	f.mu.Unlock()
}

func (f *Form) SetComment(c string) {
	f.mu.Lock()
	f.draft.Comment = c
	f.mu.Unlock()
}

func (f *Form) SetUserName(n string) {
	f.mu.Lock()
	f.draft.UserName = n
	f.mu.Unlock()
}

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormState{Draft: f.draft, Submitting: f.submitting, Error: f.errMsg, Success: f.success}
}

func draftComplete(d Draft) bool {
	return d.Rating >= 1 && d.Rating <= 5 &&
		strings.TrimSpace(d.UserName) != "" &&
		strings.TrimSpace(d.Comment) != ""
}

// Submit validates the draft locally and posts it. On success the draft is
// cleared, the acknowledgment shows for SuccessDisplay and the notifier is
// signalled once the response is in. On failure the draft is kept.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	d := f.draft
	if !draftComplete(d) {
		f.errMsg = MsgFormIncomplete
		f.mu.Unlock()
		return domain.NewValidationError(MsgFormIncomplete)
	}
	f.submitting = true
	f.errMsg = ""
	f.mu.Unlock()

	err := f.post(ctx, d)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.errMsg = MsgSubmitFailed
		f.mu.Unlock()
		log.Warn().Err(err).Str("property_id", f.propertyID).Msg("submit review failed")
		return err
	}
	f.draft = Draft{}
	f.success = true
	f.successSeq++
	seq := f.successSeq
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = f.afterFunc(SuccessDisplay, func() { f.hideSuccess(seq) })
	f.mu.Unlock()

	if f.notifier != nil {
		f.notifier.Notify(f.propertyID)
	}
	return nil
}

func (f *Form) post(ctx context.Context, d Draft) error {
	uid, err := f.identity.UserID(ctx)
	if err != nil {
		return err
	}
	_, err = f.submitter.SubmitReview(ctx, f.propertyID, domain.NewReview{
		UserID:   uid,
		UserName: strings.TrimSpace(d.UserName),
		Rating:   d.Rating,
		Comment:  strings.TrimSpace(d.Comment),
	})
	return err
}

func (f *Form) hideSuccess(seq uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.successSeq == seq {
		f.success = false
	}
}

// Close tears the form down: the draft is discarded and a pending hide is cancelled.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.draft = Draft{}
	f.success = false
}
