package repository

import (
	"context"
	"time"

	"treesync/internal/domain/webhook"
	"treesync/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WebhookEventRepository struct {
	pool *pgxpool.Pool
}

func NewWebhookEventRepository(pool *pgxpool.Pool) *WebhookEventRepository {
	return &WebhookEventRepository{pool: pool}
}

func (r *WebhookEventRepository) Insert(ctx context.Context, ev webhook.Event) error {
	const query = `
		INSERT INTO webhook_events
			(id, event_id, account_id, pms_type, event_type, payload, processed, processed_at, retry_count, error, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		ev.ID, ev.EventID, ev.AccountID, ev.PmsType, ev.EventType,
		ev.Payload, ev.Processed, ev.ProcessedAt, ev.RetryCount, ev.Error, ev.ReceivedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert webhook event", err)
	}
	return nil
}

// FindPending returns unprocessed events still holding retry budget,
// oldest first.
func (r *WebhookEventRepository) FindPending(ctx context.Context, maxRetries, limit int) ([]webhook.Event, error) {
	const query = `
		SELECT id, event_id, account_id, pms_type, event_type, payload, processed, processed_at, retry_count, error, received_at
		FROM webhook_events
		WHERE processed = false AND retry_count < $1
		ORDER BY received_at ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, maxRetries, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending webhook events", err)
	}
	defer rows.Close()

	var events []webhook.Event
	for rows.Next() {
		var ev webhook.Event
		if err := rows.Scan(
			&ev.ID, &ev.EventID, &ev.AccountID, &ev.PmsType, &ev.EventType,
			&ev.Payload, &ev.Processed, &ev.ProcessedAt, &ev.RetryCount, &ev.Error, &ev.ReceivedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook event", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate webhook events", err)
	}
	return events, nil
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, id uuid.UUID, processedAt time.Time) error {
	const query = `
		UPDATE webhook_events
		SET processed = true, processed_at = $2, error = NULL
		WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, processedAt); err != nil {
		return infra.WrapRepoErr("failed to mark webhook event processed", err)
	}
	return nil
}

func (r *WebhookEventRepository) RecordFailure(ctx context.Context, id uuid.UUID, retryCount int, errText string) error {
	const query = `
		UPDATE webhook_events
		SET retry_count = $2, error = $3
		WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, retryCount, errText); err != nil {
		return infra.WrapRepoErr("failed to record webhook event failure", err)
	}
	return nil
}

// CountExhaustedSince counts events that ran out of retries inside the
// trailing alert window.
func (r *WebhookEventRepository) CountExhaustedSince(ctx context.Context, maxRetries int, since time.Time) (int, error) {
	const query = `
		SELECT count(*)
		FROM webhook_events
		WHERE processed = false AND retry_count >= $1 AND received_at >= $2`

	var n int
	if err := r.pool.QueryRow(ctx, query, maxRetries, since).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count exhausted webhook events", err)
	}
	return n, nil
}
