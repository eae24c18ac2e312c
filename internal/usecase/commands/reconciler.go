package commands

import (
	"context"
	"log/slog"
	"time"

	"treesync/internal/domain/order"

	"github.com/google/uuid"
)

type ReconcileResult struct {
	Upserted int
	Deleted  int
}

// reconciler converges the local store toward a fetched snapshot.
// A line is deleted only when it is absent from the snapshot AND was
// booked inside the window the snapshot covers; anything booked earlier
// is outside the fetch horizon and its absence proves nothing.
type reconciler struct {
	lines  OrderLineStore
	logger *slog.Logger
}

func newReconciler(lines OrderLineStore, logger *slog.Logger) *reconciler {
	return &reconciler{lines: lines, logger: logger}
}

func (r *reconciler) Reconcile(ctx context.Context, accountID uuid.UUID, snapshot order.Snapshot, windowStart time.Time) (ReconcileResult, error) {
	existing, err := r.lines.FindAllByAccount(ctx, accountID)
	if err != nil {
		return ReconcileResult{}, err
	}

	var toDelete []string
	for _, line := range existing {
		if _, present := snapshot[line.ExternalID]; present {
			continue
		}
		if line.BookedWithin(windowStart) {
			toDelete = append(toDelete, line.ExternalID)
		}
	}

	if len(toDelete) > 0 {
		if err := r.lines.DeleteByExternalIDs(ctx, accountID, toDelete); err != nil {
			return ReconcileResult{}, err
		}
		r.logger.Info("removed lines no longer reported by source",
			"account_id", accountID, "count", len(toDelete))
	}

	result := ReconcileResult{Deleted: len(toDelete)}
	for _, line := range snapshot {
		if err := r.lines.Upsert(ctx, line); err != nil {
			return result, err
		}
		result.Upserted++
	}
	return result, nil
}
