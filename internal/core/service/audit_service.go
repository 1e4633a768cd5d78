package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/roamly/booking-api/internal/api/metrics"
	"github.com/roamly/booking-api/internal/core/domain"
	"github.com/roamly/booking-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events to the
// audit trail and exports per-action counters.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record auth event: %w", err)
	}

	metrics.AuthEventsTotal.WithLabelValues(string(event.Action)).Inc()
	s.log.Debug().
		Str("action", string(event.Action)).
		Str("email", event.Email).
		Msg("auth event recorded")
	return nil
}
