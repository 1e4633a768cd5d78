package ports

import (
	"context"

	"github.com/roamly/booking-api/internal/core/domain"
)

// AuthService implements the authentication lifecycle: anonymous
// -> authenticated(role), with logout as the terminal exit.
type AuthService interface {
	// Signup creates an account and mints a session token for it.
	Signup(ctx context.Context, email, password string) (string, *domain.User, error)
	// Login verifies credentials and mints a session token. The error for a
	// wrong password is identical to the error for an unknown email.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout records the session exit. Idempotent; identity fields may be
	// empty when the caller was already anonymous.
	Logout(ctx context.Context, userID, email string)
	// Profile resolves the subject's live record from the credential store.
	// Token claims are deliberately not trusted here: role and balance must
	// reflect administrative changes made after the token was issued.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
