// Package credentials decrypts stored PMS credential bundles on demand.
// Plaintext is never cached and never logged.
package credentials

import (
	"context"
	"encoding/json"

	"treesync/internal/domain/account"
	"treesync/internal/pkg/cryptobox"
	"treesync/internal/pkg/errs"

	"github.com/google/uuid"
)

type EncryptedReader interface {
	FindEncryptedByAccount(ctx context.Context, accountID uuid.UUID) (string, error)
	UpsertEncrypted(ctx context.Context, accountID uuid.UUID, payload string) error
}

type Store struct {
	repo EncryptedReader
	box  *cryptobox.Box
}

func NewStore(repo EncryptedReader, box *cryptobox.Box) *Store {
	return &Store{repo: repo, box: box}
}

// FindByAccount decrypts and validates the credential bundle for one
// account. Missing rows map to ErrCredentialsMissing so callers can
// distinguish onboarding gaps from storage faults.
func (s *Store) FindByAccount(ctx context.Context, accountID uuid.UUID) (account.Credentials, error) {
	encrypted, err := s.repo.FindEncryptedByAccount(ctx, accountID)
	if err != nil {
		return account.Credentials{}, errs.Mark(err, errs.ErrCredentialsMissing)
	}

	plaintext, err := s.box.Decrypt(encrypted)
	if err != nil {
		return account.Credentials{}, err
	}

	var creds account.Credentials
	if err := json.Unmarshal([]byte(plaintext), &creds); err != nil {
		return account.Credentials{}, errs.Mark(
			errs.Wrap(err, "credential payload is not valid json"),
			errs.ErrCredentialsInvalidFormat,
		)
	}
	if err := creds.Validate(); err != nil {
		return account.Credentials{}, err
	}
	return creds, nil
}

// Save encrypts and persists a credential bundle after structural
// validation.
func (s *Store) Save(ctx context.Context, accountID uuid.UUID, creds account.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(creds)
	if err != nil {
		return errs.Wrap(err, "failed to serialize credentials")
	}
	encrypted, err := s.box.Encrypt(string(raw))
	if err != nil {
		return err
	}
	return s.repo.UpsertEncrypted(ctx, accountID, encrypted)
}
