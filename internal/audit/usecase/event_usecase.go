package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/pointward/gateway/internal/audit/domain"
	apperrors "github.com/pointward/gateway/internal/errors"
)

// eventRecorder implements Recorder on top of an EventRepository.
type eventRecorder struct {
	eventRepo EventRepository
	logger    *slog.Logger
}

// Record appends one audit event with a UUIDv7 identifier and UTC timestamp.
// A persistence failure is logged and swallowed.
func (e *eventRecorder) Record(ctx context.Context, eventType auditDomain.EventType) {
	if !eventType.IsValid() {
		e.logger.Error("audit: invalid event type", slog.String("type", string(eventType)))
		return
	}

	event := &auditDomain.Event{
		ID:        uuid.Must(uuid.NewV7()),
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
	}

	if err := e.eventRepo.Create(ctx, event); err != nil {
		e.logger.Error("audit: failed to record event",
			slog.String("type", string(eventType)),
			slog.String("error", err.Error()),
		)
	}
}

// List retrieves audit events ordered by created_at descending (newest first)
// with pagination.
func (e *eventRecorder) List(ctx context.Context, offset, limit int) ([]*auditDomain.Event, error) {
	events, err := e.eventRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list recognition events")
	}
	return events, nil
}

// DeleteOlderThan removes audit events recorded more than the given number of
// days ago and returns how many rows were affected. With dryRun set, it only
// counts the rows that a real run would delete.
func (e *eventRecorder) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "days must be a positive number")
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	if dryRun {
		count, err := e.eventRepo.CountOlderThan(ctx, cutoff)
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to count old recognition events")
		}
		return count, nil
	}

	count, err := e.eventRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete old recognition events")
	}
	return count, nil
}

// NewRecorder creates a new Recorder with the provided dependencies.
func NewRecorder(eventRepo EventRepository, logger *slog.Logger) Recorder {
	return &eventRecorder{
		eventRepo: eventRepo,
		logger:    logger,
	}
}
