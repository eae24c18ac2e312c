package commands

import (
	"context"
	"log/slog"
	"strings"

	"treesync/internal/domain/account"
	"treesync/internal/domain/webhook"
	"treesync/internal/infra"
	"treesync/internal/infra/pms"
	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/config"
	"treesync/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReceiveResult struct {
	EventID         uuid.UUID
	ProcessedOrders int
	Processed       bool
}

type RetryStats struct {
	Scanned   int
	Attempted int
	Succeeded int
	Failed    int
	Exhausted int
	Alerted   bool
}

type WebhookCommands interface {
	// Receive stores the notification durably first, then attempts to
	// process it. Processing failure is not an HTTP failure: the stored
	// event keeps its retry budget.
	Receive(ctx context.Context, pmsType account.PmsType, payload []byte, headers map[string]string) (ReceiveResult, error)
	// RetryFailed replays pending events whose backoff has elapsed,
	// oldest first. Errors on individual events never abort the batch.
	RetryFailed(ctx context.Context) (RetryStats, error)
}

type webhookUseCaseImpl struct {
	cfg        config.WebhookConfig
	accounts   AccountStore
	events     WebhookEventStore
	creds      CredentialSource
	connectors ConnectorFactory
	clock      clock.Clock
	logger     *slog.Logger
}

func NewWebhookUseCase(
	cfg config.WebhookConfig,
	accounts AccountStore,
	events WebhookEventStore,
	creds CredentialSource,
	connectors ConnectorFactory,
	clk clock.Clock,
	logger *slog.Logger,
) WebhookCommands {
	return &webhookUseCaseImpl{
		cfg:        cfg,
		accounts:   accounts,
		events:     events,
		creds:      creds,
		connectors: connectors,
		clock:      clk,
		logger:     logger,
	}
}

func (uc *webhookUseCaseImpl) Receive(ctx context.Context, pmsType account.PmsType, payload []byte, headers map[string]string) (ReceiveResult, error) {
	meta, err := uc.connectors.ExtractEventMeta(pmsType, payload)
	if err != nil {
		return ReceiveResult{}, err
	}

	now := uc.clock.Now()
	ev := webhook.Event{
		ID:         uuid.New(),
		EventID:    meta.EventID,
		PmsType:    pmsType,
		EventType:  meta.EventType,
		Payload:    payload,
		ReceivedAt: now,
	}

	acc, err := uc.accounts.FindByExternalID(ctx, meta.AccountRef)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return ReceiveResult{}, err
		}
		// Unknown property: keep the payload for audit, burn the retry
		// budget so the scheduler never replays it.
		msg := "no account matches ref " + meta.AccountRef
		ev.RetryCount = uc.cfg.MaxRetries
		ev.Error = &msg
		if err := uc.events.Insert(ctx, ev); err != nil {
			return ReceiveResult{}, err
		}
		return ReceiveResult{EventID: ev.ID}, errs.Mark(errs.New(msg), errs.ErrAccountNotFound)
	}
	ev.AccountID = &acc.ID

	if err := uc.events.Insert(ctx, ev); err != nil {
		return ReceiveResult{}, err
	}

	outcome, err := uc.process(ctx, acc, ev, headers)
	if err != nil {
		uc.markFailure(ctx, ev, err.Error())
		return ReceiveResult{EventID: ev.ID}, err
	}
	if !outcome.OK() {
		uc.markFailure(ctx, ev, strings.Join(outcome.Errors, "; "))
		return ReceiveResult{EventID: ev.ID, ProcessedOrders: outcome.ProcessedOrders}, nil
	}

	if err := uc.events.MarkProcessed(ctx, ev.ID, uc.clock.Now()); err != nil {
		return ReceiveResult{EventID: ev.ID, ProcessedOrders: outcome.ProcessedOrders}, err
	}
	return ReceiveResult{EventID: ev.ID, ProcessedOrders: outcome.ProcessedOrders, Processed: true}, nil
}

func (uc *webhookUseCaseImpl) RetryFailed(ctx context.Context) (RetryStats, error) {
	now := uc.clock.Now()

	pending, err := uc.events.FindPending(ctx, uc.cfg.MaxRetries, uc.cfg.BatchSize)
	if err != nil {
		return RetryStats{}, err
	}

	stats := RetryStats{Scanned: len(pending)}
	backoff := uc.cfg.BackoffDurations()

	for _, ev := range pending {
		if now.Before(ev.NextAttemptAt(backoff)) {
			continue
		}
		stats.Attempted++

		if ev.AccountID == nil {
			uc.exhaust(ctx, ev, "event has no account")
			stats.Failed++
			continue
		}

		acc, err := uc.accounts.FindByID(ctx, *ev.AccountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				uc.exhaust(ctx, ev, "account deleted")
			} else {
				uc.markFailure(ctx, ev, err.Error())
			}
			stats.Failed++
			continue
		}

		outcome, err := uc.replay(ctx, acc, ev)
		switch {
		case err != nil:
			uc.markFailure(ctx, ev, err.Error())
			stats.Failed++
		case !outcome.OK():
			uc.markFailure(ctx, ev, strings.Join(outcome.Errors, "; "))
			stats.Failed++
		default:
			if err := uc.events.MarkProcessed(ctx, ev.ID, uc.clock.Now()); err != nil {
				uc.logger.Error("failed to mark webhook event processed", "event_id", ev.ID, "error", err)
				stats.Failed++
				continue
			}
			stats.Succeeded++
		}
	}

	exhausted, err := uc.events.CountExhaustedSince(ctx, uc.cfg.MaxRetries, now.Add(-uc.cfg.AlertWindow))
	if err != nil {
		uc.logger.Error("failed to count exhausted webhook events", "error", err)
	} else {
		stats.Exhausted = exhausted
		if exhausted > uc.cfg.AlertThreshold {
			stats.Alerted = true
			uc.logger.Error("webhook retries exhausted above alert threshold",
				"exhausted", exhausted, "threshold", uc.cfg.AlertThreshold, "window", uc.cfg.AlertWindow)
		}
	}
	return stats, nil
}

func (uc *webhookUseCaseImpl) process(ctx context.Context, acc *account.Account, ev webhook.Event, headers map[string]string) (pms.WebhookOutcome, error) {
	creds, err := uc.creds.FindByAccount(ctx, acc.ID)
	if err != nil {
		return pms.WebhookOutcome{}, err
	}
	handler, err := uc.connectors.WebhookHandler(acc.PmsType, acc.ID, creds)
	if err != nil {
		return pms.WebhookOutcome{}, err
	}
	return handler.Process(ctx, ev.Payload, headers), nil
}

// replay processes a stored event with synthesized transport auth, since
// only the body survives receipt.
func (uc *webhookUseCaseImpl) replay(ctx context.Context, acc *account.Account, ev webhook.Event) (pms.WebhookOutcome, error) {
	creds, err := uc.creds.FindByAccount(ctx, acc.ID)
	if err != nil {
		return pms.WebhookOutcome{}, err
	}
	handler, err := uc.connectors.WebhookHandler(acc.PmsType, acc.ID, creds)
	if err != nil {
		return pms.WebhookOutcome{}, err
	}
	return handler.Process(ctx, ev.Payload, uc.connectors.RetryHeaders(acc.PmsType, creds)), nil
}

func (uc *webhookUseCaseImpl) markFailure(ctx context.Context, ev webhook.Event, msg string) {
	if err := uc.events.RecordFailure(ctx, ev.ID, ev.RetryCount+1, msg); err != nil {
		uc.logger.Error("failed to record webhook failure", "event_id", ev.ID, "error", err)
	}
}

func (uc *webhookUseCaseImpl) exhaust(ctx context.Context, ev webhook.Event, msg string) {
	if err := uc.events.RecordFailure(ctx, ev.ID, uc.cfg.MaxRetries, msg); err != nil {
		uc.logger.Error("failed to exhaust webhook event", "event_id", ev.ID, "error", err)
	}
}
