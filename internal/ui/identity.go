package ui

import (
	"context"

	"github.com/google/uuid"
)

// IdentityProvider supplies the user id attached to submitted reviews.
type IdentityProvider interface {
	UserID(ctx context.Context) (string, error)
}

// AnonymousIdentity hands out a fresh placeholder id per submission.
// It stands in until a real identity provider exists.
type AnonymousIdentity struct{}

func (AnonymousIdentity) UserID(context.Context) (string, error) {
	return "user-" + uuid.NewString(), nil
}
