package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("access forbidden")
	ErrBookingNotFound = errors.New("booking not found")
)

// Booking is a reservation record owned by exactly one identity. Ownership
// (UserID, Email) is always taken from verified token claims, never from the
// request body. Notify is stored opaquely; delivery is handled elsewhere.
type Booking struct {
	ID        string        `json:"id" bson:"_id"`
	UserID    string        `json:"user_id" bson:"user_id"`
	Email     string        `json:"email" bson:"email"`
	Type      string        `json:"type" bson:"type"`
	Location  string        `json:"location" bson:"location"`
	Price     float64       `json:"price" bson:"price"`
	Datetime  time.Time     `json:"datetime" bson:"datetime"`
	Status    BookingStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	Notify    bool          `json:"notify" bson:"notify"`
}
