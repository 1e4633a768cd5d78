package ports

import (
	"context"

	"github.com/roamly/booking-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings. Writes are
// append-only from this API's perspective; each insert must be durable
// before the HTTP response is returned.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	// ListByOwner returns bookings owned by userID, newest first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Booking, error)
	// ListAll returns every booking, newest first. Admin use only.
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}
