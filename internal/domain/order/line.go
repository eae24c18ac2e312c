// Package order defines the canonical tree-order line reconciled into
// local storage, regardless of which PMS shape it arrived in.
package order

import (
	"time"

	"treesync/internal/domain/account"

	"github.com/google/uuid"
)

// Line is one reconciled sale of tree plantings. ExternalID is the upsert
// key and globally unique in the local store. Amount is always the total
// price, never the unit price. A zero amount marks a voided line that the
// source still reports; it is kept for audit instead of being deleted.
type Line struct {
	ExternalID string
	AccountID  uuid.UUID
	Quantity   int
	Amount     float64
	Currency   string
	BookedAt   time.Time
	CheckInAt  *time.Time
	PmsType    account.PmsType
}

// Snapshot is the full normalized result of one fetch, keyed by external
// line id. Ordering across sub-windows is not guaranteed and must not be
// relied upon.
type Snapshot map[string]Line

func NewSnapshot(lines []Line) Snapshot {
	s := make(Snapshot, len(lines))
	for _, l := range lines {
		s[l.ExternalID] = l
	}
	return s
}

// BookedWithin reports whether the line's booking timestamp falls inside
// the reconciliation window starting at windowStart.
func (l Line) BookedWithin(windowStart time.Time) bool {
	return !l.BookedAt.Before(windowStart)
}
