package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/roamly/booking-api/internal/core/domain"
	"github.com/roamly/booking-api/internal/core/ports"
)

// BookingService creates and lists bookings scoped to the verified caller.
type BookingService struct {
	repo ports.BookingRepository
	log  zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, log: log}
}

// Create persists a booking owned by the verified identity. The owner fields
// come from claims only; anything identity-like in the input is ignored.
func (s *BookingService) Create(ctx context.Context, owner ports.Identity, input ports.CreateBookingInput) (*domain.Booking, error) {
	if owner.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	status := domain.BookingStatus(input.Status)
	if status == "" {
		status = domain.BookingPending
	}

	booking := &domain.Booking{
		ID:        generateBookingID(),
		UserID:    owner.UserID,
		Email:     owner.Email,
		Type:      input.Type,
		Location:  input.Location,
		Price:     input.Price,
		Datetime:  input.Datetime.UTC(),
		Status:    status,
		CreatedAt: time.Now().UTC(),
		Notify:    input.Notify,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Str("user_id", owner.UserID).Msg("failed to create booking")
		return nil, err
	}

	s.log.Info().Str("booking_id", booking.ID).Str("user_id", owner.UserID).Msg("booking created")
	return booking, nil
}

// List returns the caller's bookings only. The owner filter is the sole
// authorization check and is always applied server-side.
func (s *BookingService) List(ctx context.Context, owner ports.Identity) ([]*domain.Booking, error) {
	if owner.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListByOwner(ctx, owner.UserID)
}

// ListAll returns every booking. Admin only.
func (s *BookingService) ListAll(ctx context.Context, caller ports.Identity) ([]*domain.Booking, error) {
	if caller.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListAll(ctx)
}

// generateBookingID returns a unique identifier in the format BK-XXXXXXXX.
func generateBookingID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("BK-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("BK-%08X", b)
}
