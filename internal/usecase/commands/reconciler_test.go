//go:build unit

package commands

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"treesync/internal/domain/account"
	"treesync/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLineStore struct {
	lines map[string]order.Line
}

func newMemoryLineStore(lines ...order.Line) *memoryLineStore {
	s := &memoryLineStore{lines: make(map[string]order.Line)}
	for _, l := range lines {
		s.lines[l.ExternalID] = l
	}
	return s
}

func (s *memoryLineStore) FindAllByAccount(_ context.Context, accountID uuid.UUID) ([]order.Line, error) {
	var out []order.Line
	for _, l := range s.lines {
		if l.AccountID == accountID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *memoryLineStore) Upsert(_ context.Context, line order.Line) error {
	s.lines[line.ExternalID] = line
	return nil
}

func (s *memoryLineStore) DeleteByExternalIDs(_ context.Context, _ uuid.UUID, ids []string) error {
	for _, id := range ids {
		delete(s.lines, id)
	}
	return nil
}

func TestReconciler_Reconcile(t *testing.T) {
	accountID := uuid.MustParse("3f0b7c25-9c41-4a8e-8a7d-6e1f2b3c4d5e")
	windowStart := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	line := func(id string, bookedAt time.Time) order.Line {
		return order.Line{
			ExternalID: id,
			AccountID:  accountID,
			Quantity:   1,
			Amount:     5.90,
			Currency:   "EUR",
			BookedAt:   bookedAt,
			PmsType:    account.PmsMews,
		}
	}
	inWindow := windowStart.AddDate(0, 0, 5)
	beforeWindow := windowStart.AddDate(0, 0, -5)

	t.Run("deletes lines absent from snapshot only inside the window", func(t *testing.T) {
		store := newMemoryLineStore(
			line("keep", inWindow),
			line("stale", inWindow),
			line("ancient", beforeWindow),
		)
		r := newReconciler(store, logger)

		snapshot := order.NewSnapshot([]order.Line{line("keep", inWindow)})
		result, err := r.Reconcile(context.Background(), accountID, snapshot, windowStart)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Deleted)
		assert.Equal(t, 1, result.Upserted)
		assert.Contains(t, store.lines, "keep")
		assert.NotContains(t, store.lines, "stale")
		// Booked before the fetch horizon: absence proves nothing.
		assert.Contains(t, store.lines, "ancient")
	})

	t.Run("repeated runs over the same snapshot converge", func(t *testing.T) {
		store := newMemoryLineStore(line("gone", inWindow))
		r := newReconciler(store, logger)

		snapshot := order.NewSnapshot([]order.Line{
			line("a", inWindow),
			line("b", inWindow),
		})

		first, err := r.Reconcile(context.Background(), accountID, snapshot, windowStart)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Deleted)
		assert.Equal(t, 2, first.Upserted)

		second, err := r.Reconcile(context.Background(), accountID, snapshot, windowStart)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Deleted)
		assert.Equal(t, 2, second.Upserted)
		assert.Len(t, store.lines, 2)
	})

	t.Run("empty snapshot clears the window and nothing else", func(t *testing.T) {
		store := newMemoryLineStore(
			line("recent", inWindow),
			line("ancient", beforeWindow),
		)
		r := newReconciler(store, logger)

		result, err := r.Reconcile(context.Background(), accountID, order.Snapshot{}, windowStart)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Deleted)
		assert.Equal(t, 0, result.Upserted)
		assert.Contains(t, store.lines, "ancient")
	})

	t.Run("updated amounts overwrite on upsert", func(t *testing.T) {
		store := newMemoryLineStore(line("x", inWindow))
		r := newReconciler(store, logger)

		updated := line("x", inWindow)
		updated.Amount = 23.60
		updated.Quantity = 4

		_, err := r.Reconcile(context.Background(), accountID, order.NewSnapshot([]order.Line{updated}), windowStart)
		require.NoError(t, err)

		got := store.lines["x"]
		assert.Equal(t, 4, got.Quantity)
		assert.InDelta(t, 23.60, got.Amount, 0.001)
	})
}
