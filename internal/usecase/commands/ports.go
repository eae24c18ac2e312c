package commands

import (
	"context"
	"time"

	"treesync/internal/domain/account"
	"treesync/internal/domain/order"
	"treesync/internal/domain/webhook"
	"treesync/internal/infra/pms"

	"github.com/google/uuid"
)

type AccountStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	FindByExternalID(ctx context.Context, externalID string) (*account.Account, error)
	ResolveExternalID(ctx context.Context, id uuid.UUID, externalID string) error
}

type OrderLineStore interface {
	FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]order.Line, error)
	Upsert(ctx context.Context, line order.Line) error
	DeleteByExternalIDs(ctx context.Context, accountID uuid.UUID, externalIDs []string) error
}

type WebhookEventStore interface {
	Insert(ctx context.Context, ev webhook.Event) error
	FindPending(ctx context.Context, maxRetries, limit int) ([]webhook.Event, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, processedAt time.Time) error
	RecordFailure(ctx context.Context, id uuid.UUID, retryCount int, errText string) error
	CountExhaustedSince(ctx context.Context, maxRetries int, since time.Time) (int, error)
}

// CredentialSource yields the decrypted bundle for one account.
type CredentialSource interface {
	FindByAccount(ctx context.Context, accountID uuid.UUID) (account.Credentials, error)
}

type ConnectorFactory interface {
	Connector(pmsType account.PmsType, creds account.Credentials) (pms.Connector, error)
	WebhookHandler(pmsType account.PmsType, accountID uuid.UUID, creds account.Credentials) (pms.WebhookHandler, error)
	ExtractEventMeta(pmsType account.PmsType, payload []byte) (pms.EventMeta, error)
	RetryHeaders(pmsType account.PmsType, creds account.Credentials) map[string]string
}

// SyncLease is the extension point for per-account mutual exclusion.
// Concurrent syncs of the same account are tolerated (last write wins),
// so the default lease grants unconditionally.
type SyncLease interface {
	Acquire(ctx context.Context, accountID uuid.UUID) (release func(), err error)
}

type NoopSyncLease struct{}

func (NoopSyncLease) Acquire(context.Context, uuid.UUID) (func(), error) {
	return func() {}, nil
}
