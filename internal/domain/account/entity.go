// Package account models one external PMS-connected property and the
// secret material needed to reach its API.
package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is one onboarded property. ExternalID stays "pending" until the
// first successful discovery or sync resolves the enterprise id; after
// that it is never silently changed.
type Account struct {
	ID         uuid.UUID
	ExternalID string
	Name       string
	PmsType    PmsType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (a *Account) ExternalIDResolved() bool {
	return a.ExternalID != "" && a.ExternalID != ExternalIDPending
}
