//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"treesync/internal/domain/account"
	"treesync/internal/domain/webhook"
	"treesync/internal/infra"
	"treesync/internal/infra/pms"
	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/config"
	"treesync/internal/pkg/errs"
	"treesync/internal/usecase/commands"
	commandsmock "treesync/tests/mock/commands"
	pmsmock "treesync/tests/mock/pms"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	whAccountID = uuid.MustParse("1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f")
	whNow       = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
)

type webhookFixture struct {
	ctrl     *gomock.Controller
	accounts *commandsmock.MockAccountStore
	events   *commandsmock.MockWebhookEventStore
	creds    *commandsmock.MockCredentialSource
	factory  *commandsmock.MockConnectorFactory
	handler  *pmsmock.MockWebhookHandler
	cfg      config.WebhookConfig
	clk      *clock.MockClock
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	ctrl := gomock.NewController(t)
	return &webhookFixture{
		ctrl:     ctrl,
		accounts: commandsmock.NewMockAccountStore(ctrl),
		events:   commandsmock.NewMockWebhookEventStore(ctrl),
		creds:    commandsmock.NewMockCredentialSource(ctrl),
		factory:  commandsmock.NewMockConnectorFactory(ctrl),
		handler:  pmsmock.NewMockWebhookHandler(ctrl),
		cfg:      config.NewTestConfig().Webhook,
		clk:      clock.NewMockClock(whNow),
	}
}

func (f *webhookFixture) usecase() commands.WebhookCommands {
	return commands.NewWebhookUseCase(
		f.cfg, f.accounts, f.events, f.creds, f.factory, f.clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func mewsAccount() *account.Account {
	return &account.Account{ID: whAccountID, ExternalID: "ent-1", PmsType: account.PmsMews}
}

func mewsCreds() account.Credentials {
	return account.Credentials{PmsType: account.PmsMews, ClientToken: "ct", AccessToken: "at"}
}

func pendingEvent(retryCount int, receivedAt time.Time) webhook.Event {
	id := whAccountID
	return webhook.Event{
		ID:         uuid.New(),
		AccountID:  &id,
		PmsType:    account.PmsMews,
		EventType:  "ServiceOrderUpdated",
		Payload:    []byte(`{}`),
		RetryCount: retryCount,
		ReceivedAt: receivedAt,
	}
}

func TestWebhookUseCase_Receive(t *testing.T) {
	payload := []byte(`{"EnterpriseId":"ent-1"}`)
	meta := pms.EventMeta{AccountRef: "ent-1", EventType: "ServiceOrderUpdated"}

	t.Run("stores then processes successfully", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.factory.EXPECT().ExtractEventMeta(account.PmsMews, payload).Return(meta, nil)
		f.accounts.EXPECT().FindByExternalID(gomock.Any(), "ent-1").Return(mewsAccount(), nil)
		f.events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.creds.EXPECT().FindByAccount(gomock.Any(), whAccountID).Return(mewsCreds(), nil)
		f.factory.EXPECT().WebhookHandler(account.PmsMews, whAccountID, mewsCreds()).Return(f.handler, nil)
		f.handler.EXPECT().Process(gomock.Any(), payload, gomock.Nil()).
			Return(pms.WebhookOutcome{ProcessedOrders: 2})
		f.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), whNow).Return(nil)

		result, err := f.usecase().Receive(context.Background(), account.PmsMews, payload, nil)
		require.NoError(t, err)
		assert.True(t, result.Processed)
		assert.Equal(t, 2, result.ProcessedOrders)
	})

	t.Run("processing failure keeps retry budget", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.factory.EXPECT().ExtractEventMeta(account.PmsMews, payload).Return(meta, nil)
		f.accounts.EXPECT().FindByExternalID(gomock.Any(), "ent-1").Return(mewsAccount(), nil)
		f.events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.creds.EXPECT().FindByAccount(gomock.Any(), whAccountID).Return(mewsCreds(), nil)
		f.factory.EXPECT().WebhookHandler(account.PmsMews, whAccountID, mewsCreds()).Return(f.handler, nil)
		f.handler.EXPECT().Process(gomock.Any(), payload, gomock.Nil()).
			Return(pms.WebhookOutcome{Errors: []string{"store unavailable"}})
		f.events.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), 1, "store unavailable").Return(nil)

		result, err := f.usecase().Receive(context.Background(), account.PmsMews, payload, nil)
		require.NoError(t, err)
		assert.False(t, result.Processed)
	})

	t.Run("unknown property burns retry budget on insert", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.factory.EXPECT().ExtractEventMeta(account.PmsMews, payload).Return(meta, nil)
		f.accounts.EXPECT().FindByExternalID(gomock.Any(), "ent-1").
			Return(nil, infra.WrapRepoErr("failed to find account by external id", pgx.ErrNoRows))
		f.events.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev webhook.Event) error {
				assert.Equal(t, f.cfg.MaxRetries, ev.RetryCount)
				assert.Nil(t, ev.AccountID)
				return nil
			})

		_, err := f.usecase().Receive(context.Background(), account.PmsMews, payload, nil)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("malformed payload is rejected before storage", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.factory.EXPECT().ExtractEventMeta(account.PmsMews, payload).
			Return(pms.EventMeta{}, errs.ErrWebhookBadPayload)

		_, err := f.usecase().Receive(context.Background(), account.PmsMews, payload, nil)
		assert.ErrorIs(t, err, errs.ErrWebhookBadPayload)
	})
}

func TestWebhookUseCase_RetryFailed(t *testing.T) {
	t.Run("replays events whose backoff elapsed", func(t *testing.T) {
		f := newWebhookFixture(t)
		ev := pendingEvent(0, whNow.Add(-2*time.Minute))

		f.events.EXPECT().FindPending(gomock.Any(), f.cfg.MaxRetries, f.cfg.BatchSize).
			Return([]webhook.Event{ev}, nil)
		f.accounts.EXPECT().FindByID(gomock.Any(), whAccountID).Return(mewsAccount(), nil)
		f.creds.EXPECT().FindByAccount(gomock.Any(), whAccountID).Return(mewsCreds(), nil)
		f.factory.EXPECT().WebhookHandler(account.PmsMews, whAccountID, mewsCreds()).Return(f.handler, nil)
		f.factory.EXPECT().RetryHeaders(account.PmsMews, mewsCreds()).Return(nil)
		f.handler.EXPECT().Process(gomock.Any(), ev.Payload, gomock.Nil()).
			Return(pms.WebhookOutcome{ProcessedOrders: 1})
		f.events.EXPECT().MarkProcessed(gomock.Any(), ev.ID, whNow).Return(nil)
		f.events.EXPECT().CountExhaustedSince(gomock.Any(), f.cfg.MaxRetries, whNow.Add(-f.cfg.AlertWindow)).
			Return(0, nil)

		stats, err := f.usecase().RetryFailed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Attempted)
		assert.Equal(t, 1, stats.Succeeded)
	})

	t.Run("skips events still inside backoff", func(t *testing.T) {
		f := newWebhookFixture(t)
		// Second attempt waits 300s; only 2 minutes have passed.
		ev := pendingEvent(1, whNow.Add(-2*time.Minute))

		f.events.EXPECT().FindPending(gomock.Any(), f.cfg.MaxRetries, f.cfg.BatchSize).
			Return([]webhook.Event{ev}, nil)
		f.events.EXPECT().CountExhaustedSince(gomock.Any(), f.cfg.MaxRetries, gomock.Any()).Return(0, nil)

		stats, err := f.usecase().RetryFailed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Scanned)
		assert.Equal(t, 0, stats.Attempted)
	})

	t.Run("deleted account exhausts the event permanently", func(t *testing.T) {
		f := newWebhookFixture(t)
		ev := pendingEvent(0, whNow.Add(-2*time.Minute))

		f.events.EXPECT().FindPending(gomock.Any(), f.cfg.MaxRetries, f.cfg.BatchSize).
			Return([]webhook.Event{ev}, nil)
		f.accounts.EXPECT().FindByID(gomock.Any(), whAccountID).
			Return(nil, infra.WrapRepoErr("failed to find account", pgx.ErrNoRows))
		f.events.EXPECT().RecordFailure(gomock.Any(), ev.ID, f.cfg.MaxRetries, "account deleted").Return(nil)
		f.events.EXPECT().CountExhaustedSince(gomock.Any(), f.cfg.MaxRetries, gomock.Any()).Return(0, nil)

		stats, err := f.usecase().RetryFailed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Failed)
	})

	t.Run("failed replay increments retry count", func(t *testing.T) {
		f := newWebhookFixture(t)
		ev := pendingEvent(1, whNow.Add(-10*time.Minute))

		f.events.EXPECT().FindPending(gomock.Any(), f.cfg.MaxRetries, f.cfg.BatchSize).
			Return([]webhook.Event{ev}, nil)
		f.accounts.EXPECT().FindByID(gomock.Any(), whAccountID).Return(mewsAccount(), nil)
		f.creds.EXPECT().FindByAccount(gomock.Any(), whAccountID).Return(mewsCreds(), nil)
		f.factory.EXPECT().WebhookHandler(account.PmsMews, whAccountID, mewsCreds()).Return(f.handler, nil)
		f.factory.EXPECT().RetryHeaders(account.PmsMews, mewsCreds()).Return(nil)
		f.handler.EXPECT().Process(gomock.Any(), ev.Payload, gomock.Nil()).
			Return(pms.WebhookOutcome{Errors: []string{"still failing"}})
		f.events.EXPECT().RecordFailure(gomock.Any(), ev.ID, 2, "still failing").Return(nil)
		f.events.EXPECT().CountExhaustedSince(gomock.Any(), f.cfg.MaxRetries, gomock.Any()).Return(0, nil)

		stats, err := f.usecase().RetryFailed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Failed)
	})

	t.Run("alerts when exhausted events exceed threshold", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.events.EXPECT().FindPending(gomock.Any(), f.cfg.MaxRetries, f.cfg.BatchSize).Return(nil, nil)
		f.events.EXPECT().CountExhaustedSince(gomock.Any(), f.cfg.MaxRetries, gomock.Any()).
			Return(f.cfg.AlertThreshold+1, nil)

		stats, err := f.usecase().RetryFailed(context.Background())
		require.NoError(t, err)
		assert.True(t, stats.Alerted)
		assert.Equal(t, f.cfg.AlertThreshold+1, stats.Exhausted)
	})
}
