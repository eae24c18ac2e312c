package repository

import (
	"context"

	"treesync/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CredentialsRepository reads and writes encrypted credential payloads.
// Plaintext never passes through this layer; encryption happens in
// internal/infra/credentials.
type CredentialsRepository struct {
	pool *pgxpool.Pool
}

func NewCredentialsRepository(pool *pgxpool.Pool) *CredentialsRepository {
	return &CredentialsRepository{pool: pool}
}

func (r *CredentialsRepository) FindEncryptedByAccount(ctx context.Context, accountID uuid.UUID) (string, error) {
	const query = `
		SELECT encrypted_payload
		FROM account_credentials
		WHERE account_id = $1`

	var payload string
	if err := r.pool.QueryRow(ctx, query, accountID).Scan(&payload); err != nil {
		return "", infra.WrapRepoErr("failed to find account credentials", err)
	}
	return payload, nil
}

func (r *CredentialsRepository) UpsertEncrypted(ctx context.Context, accountID uuid.UUID, payload string) error {
	const query = `
		INSERT INTO account_credentials (account_id, encrypted_payload, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (account_id)
		DO UPDATE SET encrypted_payload = EXCLUDED.encrypted_payload, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, accountID, payload); err != nil {
		return infra.WrapRepoErr("failed to upsert account credentials", err)
	}
	return nil
}
