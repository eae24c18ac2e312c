// Package webhook models the durable receipt of asynchronously delivered
// PMS notifications, kept for replay when processing fails.
package webhook

import (
	"time"

	"treesync/internal/domain/account"

	"github.com/google/uuid"
)

// Event is one received notification. EventID is the provider-assigned id
// when the payload carries one. RetryCount only ever grows; an event with
// RetryCount at the configured maximum and Processed false is exhausted.
type Event struct {
	ID          uuid.UUID
	EventID     *string
	AccountID   *uuid.UUID
	PmsType     account.PmsType
	EventType   string
	Payload     []byte
	Processed   bool
	ProcessedAt *time.Time
	RetryCount  int
	Error       *string
	ReceivedAt  time.Time
}

// Exhausted reports whether the event has used up its retry budget
// without ever being processed.
func (e Event) Exhausted(maxRetries int) bool {
	return !e.Processed && e.RetryCount >= maxRetries
}

// NextAttemptAt computes when the event becomes eligible for its next
// retry. The backoff schedule is indexed by RetryCount; counts past the
// end of the schedule reuse the last entry.
func (e Event) NextAttemptAt(backoff []time.Duration) time.Time {
	if len(backoff) == 0 {
		return e.ReceivedAt
	}
	idx := e.RetryCount
	if idx >= len(backoff) {
		idx = len(backoff) - 1
	}
	return e.ReceivedAt.Add(backoff[idx])
}
