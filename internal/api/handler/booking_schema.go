package handler

import (
	"time"

	"github.com/roamly/booking-api/internal/core/domain"
)

type createBookingRequest struct {
	Type     string    `json:"type"     validate:"required"`
	Location string    `json:"location" validate:"required"`
	Price    float64   `json:"price"    validate:"required,gt=0"`
	Datetime time.Time `json:"datetime" validate:"required"`
	Status   string    `json:"status"   validate:"omitempty,oneof=pending confirmed cancelled"`
	Notify   bool      `json:"notify"`
}

// bookingView is the JSON projection of a booking record.
type bookingView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	Datetime  time.Time `json:"datetime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Notify    bool      `json:"notify"`
}

type createBookingResponse struct {
	Booking bookingView `json:"booking"`
}

type listBookingsResponse struct {
	Bookings []bookingView `json:"bookings"`
}

func toBookingView(b *domain.Booking) bookingView {
	return bookingView{
		ID:        b.ID,
		UserID:    b.UserID,
		Email:     b.Email,
		Type:      b.Type,
		Location:  b.Location,
		Price:     b.Price,
		Datetime:  b.Datetime,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		Notify:    b.Notify,
	}
}

func toBookingViews(bookings []*domain.Booking) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, toBookingView(b))
	}
	return views
}
