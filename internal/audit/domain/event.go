// Package domain defines the recognition audit event model. Every face
// recognition, identity merge and confusion report is recorded durably so the
// recognition pipeline's behavior can be reconstructed after the fact.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a recognition audit event.
type EventType string

const (
	// RecognitionEvent records one face recognition request, new or known.
	RecognitionEvent EventType = "recognition"
	// MergeEvent records folding a duplicate identity into an existing one.
	MergeEvent EventType = "merge"
	// ConfusionEvent records a misattribution report between two identities.
	ConfusionEvent EventType = "confusion"
)

// IsValid checks if the event type is one of the defined types.
func (e EventType) IsValid() bool {
	switch e {
	case RecognitionEvent, MergeEvent, ConfusionEvent:
		return true
	}
	return false
}

// Event is one durable recognition audit record.
type Event struct {
	// ID is the unique identifier, time-ordered (UUIDv7).
	ID uuid.UUID
	// Type classifies the event.
	Type EventType
	// CreatedAt is the UTC timestamp when the event was recorded.
	CreatedAt time.Time
}
