//go:build unit

package mews_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"treesync/internal/domain/order"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeLineStore records mutations in memory for webhook handler tests.
type fakeLineStore struct {
	mu      sync.Mutex
	lines   map[string]order.Line
	failure error
}

func newFakeLineStore() *fakeLineStore {
	return &fakeLineStore{lines: make(map[string]order.Line)}
}

func (s *fakeLineStore) Upsert(_ context.Context, line order.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	s.lines[line.ExternalID] = line
	return nil
}

func (s *fakeLineStore) DeleteByExternalIDs(_ context.Context, _ uuid.UUID, externalIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	for _, id := range externalIDs {
		delete(s.lines, id)
	}
	return nil
}
