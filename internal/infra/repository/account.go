package repository

import (
	"context"

	"treesync/internal/domain/account"
	"treesync/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	const query = `
		SELECT id, external_id, name, pms_type, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	var a account.Account
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.ExternalID, &a.Name, &a.PmsType, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find account", err)
	}
	return &a, nil
}

func (r *AccountRepository) FindByExternalID(ctx context.Context, externalID string) (*account.Account, error) {
	const query = `
		SELECT id, external_id, name, pms_type, created_at, updated_at
		FROM accounts
		WHERE external_id = $1`

	var a account.Account
	err := r.pool.QueryRow(ctx, query, externalID).Scan(
		&a.ID, &a.ExternalID, &a.Name, &a.PmsType, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find account by external id", err)
	}
	return &a, nil
}

// ResolveExternalID replaces the placeholder external id with the value
// reported by the PMS. Already-resolved accounts are left untouched.
func (r *AccountRepository) ResolveExternalID(ctx context.Context, id uuid.UUID, externalID string) error {
	const query = `
		UPDATE accounts
		SET external_id = $2, updated_at = now()
		WHERE id = $1 AND external_id = $3`

	_, err := r.pool.Exec(ctx, query, id, externalID, account.ExternalIDPending)
	if err != nil {
		return infra.WrapRepoErr("failed to resolve account external id", err)
	}
	return nil
}
