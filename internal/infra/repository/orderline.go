package repository

import (
	"context"

	"treesync/internal/domain/order"
	"treesync/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderLineRepository struct {
	pool *pgxpool.Pool
}

func NewOrderLineRepository(pool *pgxpool.Pool) *OrderLineRepository {
	return &OrderLineRepository{pool: pool}
}

func (r *OrderLineRepository) FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]order.Line, error) {
	const query = `
		SELECT external_id, account_id, quantity, amount, currency, booked_at, check_in_at, pms_type
		FROM order_lines
		WHERE account_id = $1
		ORDER BY booked_at DESC`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var l order.Line
		if err := rows.Scan(
			&l.ExternalID, &l.AccountID, &l.Quantity, &l.Amount,
			&l.Currency, &l.BookedAt, &l.CheckInAt, &l.PmsType,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order lines", err)
	}
	return lines, nil
}

func (r *OrderLineRepository) Upsert(ctx context.Context, line order.Line) error {
	const query = `
		INSERT INTO order_lines
			(external_id, account_id, quantity, amount, currency, booked_at, check_in_at, pms_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (external_id)
		DO UPDATE SET
			quantity    = EXCLUDED.quantity,
			amount      = EXCLUDED.amount,
			currency    = EXCLUDED.currency,
			booked_at   = EXCLUDED.booked_at,
			check_in_at = EXCLUDED.check_in_at,
			updated_at  = now()`

	_, err := r.pool.Exec(ctx, query,
		line.ExternalID, line.AccountID, line.Quantity, line.Amount,
		line.Currency, line.BookedAt, line.CheckInAt, line.PmsType,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert order line", err)
	}
	return nil
}

func (r *OrderLineRepository) DeleteByExternalIDs(ctx context.Context, accountID uuid.UUID, externalIDs []string) error {
	if len(externalIDs) == 0 {
		return nil
	}

	const query = `
		DELETE FROM order_lines
		WHERE account_id = $1 AND external_id = ANY($2)`

	if _, err := r.pool.Exec(ctx, query, accountID, externalIDs); err != nil {
		return infra.WrapRepoErr("failed to delete order lines", err)
	}
	return nil
}
