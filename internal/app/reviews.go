package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/domain"
)

const (
	MsgInvalidPropertyID = "Invalid property ID"
	MsgMissingFields     = "Missing required fields"
	MsgRatingRange       = "Rating must be between 1 and 5"
)

// ReviewService validates review traffic before it reaches the store.
type ReviewService struct {
	store domain.ReviewStore
}

func NewReviewService(s domain.ReviewStore) *ReviewService {
	return &ReviewService{store: s}
}

func (s *ReviewService) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	if !ValidPropertyID(propertyID) {
		return nil, domain.NewValidationError(MsgInvalidPropertyID)
	}
	rs, err := s.store.ListReviews(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for %s: %w", propertyID, err)
	}
	if rs == nil {
		rs = []domain.Review{}
	}
	return rs, nil
}

// Stats aggregates the current reviews of a property.
func (s *ReviewService) Stats(ctx context.Context, propertyID string) (domain.AggregateStats, error) {
	rs, err := s.ListReviews(ctx, propertyID)
	if err != nil {
		return domain.AggregateStats{}, err
	}
	return domain.Aggregate(rs), nil
}

// SubmitReview validates in and appends it. Nothing is written when validation fails.
func (s *ReviewService) SubmitReview(ctx context.Context, propertyID string, in domain.NewReview) (domain.Review, error) {
	if !ValidPropertyID(propertyID) {
		observability.ObserveReviewSubmission("rejected")
		return domain.Review{}, domain.NewValidationError(MsgInvalidPropertyID)
	}
	in.UserID = strings.TrimSpace(in.UserID)
	in.UserName = strings.TrimSpace(in.UserName)
	in.Comment = strings.TrimSpace(in.Comment)
	if in.UserAvatar != nil && strings.TrimSpace(*in.UserAvatar) == "" {
		in.UserAvatar = nil
	}

	if err := validateReview(in); err != nil {
		observability.ObserveReviewSubmission("rejected")
		log.Debug().Str("property_id", propertyID).Err(err).Msg("review rejected")
		return domain.Review{}, err
	}

	rv, err := s.store.AppendReview(ctx, propertyID, in)
	if err != nil {
		observability.ObserveReviewSubmission("error")
		return domain.Review{}, fmt.Errorf("append review for %s: %w", propertyID, err)
	}
	observability.ObserveReviewSubmission("created")
	log.Info().
		Str("property_id", propertyID).
		Str("review_id", rv.ID).
		Int("rating", rv.Rating).
		Msg("review created")
	return rv, nil
}

// validateReview maps validator failures onto the endpoint's messages:
// a missing field wins over an out-of-range rating.
func validateReview(in domain.NewReview) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate review: %w", err)
	}
	msg := ""
	for _, fe := range verrs {
		switch {
		case fe.Tag() == "required":
			return domain.NewValidationError(MsgMissingFields)
		case fe.Field() == "rating":
			msg = MsgRatingRange
		}
	}
	if msg == "" {
		msg = verrs[0].Error()
	}
	return domain.NewValidationError(msg)
}
