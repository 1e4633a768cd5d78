package ports

import (
	"context"
	"time"

	"github.com/roamly/booking-api/internal/core/domain"
)

// Identity is the verified caller identity extracted from token claims.
// Handlers must populate it from the auth middleware, never from the body.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// CreateBookingInput carries the caller-supplied booking fields.
type CreateBookingInput struct {
	Type     string
	Location string
	Price    float64
	Datetime time.Time
	Status   string
	Notify   bool
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	Create(ctx context.Context, owner Identity, input CreateBookingInput) (*domain.Booking, error)
	// List returns only the caller's own bookings.
	List(ctx context.Context, owner Identity) ([]*domain.Booking, error)
	// ListAll returns every booking; fails with domain.ErrForbidden unless
	// the caller holds the admin role.
	ListAll(ctx context.Context, caller Identity) ([]*domain.Booking, error)
}
