package services

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// GoogleOAuthSvcFacade handles Google sign-in.
type GoogleOAuthSvcFacade interface {
	// ExchangeCode trades an authorization code for the Google identity
	// behind it and returns the matching (or newly created) user.
	ExchangeCode(ctx context.Context, code string) (*domain.User, error)
}
