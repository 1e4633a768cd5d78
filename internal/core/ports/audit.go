package ports

import (
	"context"

	"github.com/roamly/booking-api/internal/core/domain"
)

// AuditRepository persists authentication events to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService processes queued authentication events.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts events for asynchronous recording. Enqueue must never
// block the request path; implementations drop events under backpressure
// instead of stalling the caller.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}
