package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roamly/booking-api/internal/core/domain"
)

type collectService struct {
	mu     sync.Mutex
	events []domain.AuthEvent
	done   chan struct{}
	want   int
}

func (s *collectService) Process(ctx context.Context, event domain.AuthEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	svc := &collectService{done: make(chan struct{}), want: 3}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, action := range []domain.AuthAction{domain.ActionSignup, domain.ActionLogin, domain.ActionLogout} {
		d.Enqueue(domain.AuthEvent{Email: "a@x.com", Action: action, Timestamp: time.Now()})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("events not processed in time")
	}

	// Same email always lands on the same worker, so ordering is preserved.
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.events[0].Action != domain.ActionSignup || svc.events[2].Action != domain.ActionLogout {
		t.Fatalf("per-account ordering lost: %+v", svc.events)
	}
}

func TestDispatcher_EnqueueDropsWhenBufferFull(t *testing.T) {
	// Workers are never started, so the single shard buffer fills up and
	// the overflow event must be dropped rather than block the caller.
	d := NewDispatcher(1, nil, zerolog.Nop())

	for i := 0; i < channelBuffer; i++ {
		d.Enqueue(domain.AuthEvent{Email: "a@x.com", Action: domain.ActionLogin, Timestamp: time.Now()})
	}

	returned := make(chan struct{})
	go func() {
		d.Enqueue(domain.AuthEvent{Email: "a@x.com", Action: domain.ActionLogin, Timestamp: time.Now()})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatalf("Enqueue blocked on a full buffer")
	}

	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("buffered events = %d, want %d", got, channelBuffer)
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())
	first := d.shardIndex("a@x.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("a@x.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
