package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roamly/booking-api/internal/core/domain"
	"github.com/roamly/booking-api/internal/core/ports"
)

type stubBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

func (r *stubBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *b
	r.bookings = append(r.bookings, &stored)
	return nil
}

func (r *stubBookingRepo) ListByOwner(ctx context.Context, userID string) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func testInput() ports.CreateBookingInput {
	return ports.CreateBookingInput{
		Type:     "hotel",
		Location: "Lisbon",
		Price:    120,
		Datetime: time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC),
		Notify:   true,
	}
}

func TestBookingService_Create_OwnerFromIdentity(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := NewBookingService(repo, zerolog.Nop())

	owner := ports.Identity{UserID: "u-1", Email: "a@x.com", Role: domain.RoleUser}
	booking, err := svc.Create(context.Background(), owner, testInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if booking.UserID != "u-1" || booking.Email != "a@x.com" {
		t.Fatalf("owner not taken from identity: %+v", booking)
	}
	if booking.ID == "" {
		t.Fatalf("expected assigned booking id")
	}
	if booking.Status != domain.BookingPending {
		t.Fatalf("expected default pending status, got %q", booking.Status)
	}
	if booking.CreatedAt.IsZero() {
		t.Fatalf("expected server-set created_at")
	}
}

func TestBookingService_Create_Anonymous(t *testing.T) {
	svc := NewBookingService(&stubBookingRepo{}, zerolog.Nop())
	if _, err := svc.Create(context.Background(), ports.Identity{}, testInput()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestBookingService_List_ScopedToOwner(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := NewBookingService(repo, zerolog.Nop())

	alice := ports.Identity{UserID: "u-1", Email: "a@x.com"}
	bob := ports.Identity{UserID: "u-2", Email: "b@x.com"}

	if _, err := svc.Create(context.Background(), alice, testInput()); err != nil {
		t.Fatalf("create alice: %v", err)
	}
	if _, err := svc.Create(context.Background(), bob, testInput()); err != nil {
		t.Fatalf("create bob: %v", err)
	}

	got, err := svc.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(got))
	}
	if got[0].UserID != "u-1" {
		t.Fatalf("list leaked another identity's booking: %+v", got[0])
	}
}

func TestBookingService_ListAll_AdminOnly(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := NewBookingService(repo, zerolog.Nop())

	if _, err := svc.ListAll(context.Background(), ports.Identity{UserID: "u-1", Role: domain.RoleUser}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.Identity{UserID: "u-1"}, testInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	all, err := svc.ListAll(context.Background(), ports.Identity{UserID: "adm", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(all))
	}
}

func TestBookingService_ConcurrentCreates_NoLostUpdate(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := NewBookingService(repo, zerolog.Nop())
	owner := ports.Identity{UserID: "u-1", Email: "a@x.com"}

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Create(context.Background(), owner, testInput()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent create: %v", err)
	}

	got, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != n {
		t.Fatalf("lost update: expected %d bookings, got %d", n, len(got))
	}
}
