package domain

import "time"

// BookingRequest is the booking form payload. Card data is validated but never stored.
type BookingRequest struct {
	PropertyID     string `json:"propertyId,omitempty"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required,cardnumber"`
	ExpirationDate string `json:"expirationDate" validate:"required,expiry"`
	CVV            string `json:"cvv" validate:"required,cvv"`
	BillingAddress string `json:"billingAddress" validate:"required"`
}

type Booking struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId,omitempty"`
	GuestName  string    `json:"guestName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phoneNumber"`
	CardLast4  string    `json:"cardLast4"`
	CreatedAt  time.Time `json:"createdAt"`
}
