package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stayhub/internal/domain"
)

const (
	MsgFixFields        = "Please fix the highlighted fields."
	MsgBookingConfirmed = "Booking confirmed! A confirmation email will be sent shortly."
)

var bookingRequired = map[string]string{
	"firstName":      "First name is required",
	"lastName":       "Last name is required",
	"email":          "Email is required",
	"phoneNumber":    "Phone number is required",
	"cardNumber":     "Card number is required",
	"expirationDate": "Expiration date is required",
	"cvv":            "CVV is required",
	"billingAddress": "Billing address is required",
}

var bookingInvalid = map[string]string{
	"email":          "Enter a valid email",
	"cardNumber":     "Enter a valid card number",
	"expirationDate": "Enter a valid expiration date (MM/YY)",
	"cvv":            "Enter a valid CVV",
}

// BookingService validates booking requests and records them. No payment is taken.
type BookingService struct {
	store domain.BookingStore
	now   func() time.Time
}

func NewBookingService(s domain.BookingStore) *BookingService {
	return &BookingService{store: s, now: time.Now}
}

func (s *BookingService) Book(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	req = normalizeBooking(req)
	if err := validateBooking(req); err != nil {
		return domain.Booking{}, err
	}

	b := domain.Booking{
		ID:         uuid.NewString(),
		PropertyID: req.PropertyID,
		GuestName:  req.FirstName + " " + req.LastName,
		Email:      req.Email,
		Phone:      req.PhoneNumber,
		CardLast4:  req.CardNumber[len(req.CardNumber)-4:],
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.SaveBooking(ctx, b); err != nil {
		return domain.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	log.Info().Str("booking_id", b.ID).Str("property_id", b.PropertyID).Msg("booking recorded")
	return b, nil
}

func normalizeBooking(r domain.BookingRequest) domain.BookingRequest {
	r.PropertyID = strings.TrimSpace(r.PropertyID)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.CardNumber = strings.Join(strings.Fields(r.CardNumber), "")
	r.ExpirationDate = strings.TrimSpace(r.ExpirationDate)
	r.CVV = strings.TrimSpace(r.CVV)
	r.BillingAddress = strings.TrimSpace(r.BillingAddress)
	return r
}

func validateBooking(r domain.BookingRequest) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate booking: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if fe.Tag() == "required" {
			fields[name] = bookingRequired[name]
			continue
		}
		if msg, ok := bookingInvalid[name]; ok {
			fields[name] = msg
		} else {
			fields[name] = fe.Error()
		}
	}
	return &domain.ValidationError{Msg: MsgFixFields, Fields: fields}
}
