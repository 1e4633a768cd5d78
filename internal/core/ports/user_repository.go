package ports

import (
	"context"

	"github.com/roamly/booking-api/internal/core/domain"
)

// UserRepository is the credential store: the system of record for accounts.
type UserRepository interface {
	// Create persists a new user and returns the stored record with its
	// assigned ID. Fails with domain.ErrUserExists on a duplicate email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
