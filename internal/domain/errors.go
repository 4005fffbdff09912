package domain

import "errors"

var ErrNotFound = errors.New("not found")

// ValidationError is a client-fixable input problem. Fields is set for
// multi-field forms (bookings) and maps a JSON field name to its message.
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) *ValidationError { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
