package commands

import (
	"context"
	"log/slog"
	"time"

	"treesync/internal/domain/account"
	"treesync/internal/domain/order"
	"treesync/internal/infra"
	"treesync/internal/infra/pms"
	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/config"
	"treesync/internal/pkg/errs"

	"github.com/google/uuid"
)

type SyncResult struct {
	Fetched    int
	Upserted   int
	Deleted    int
	Pages      int
	SubWindows int
}

type SyncCommands interface {
	// Run fetches the full reconciliation window from the account's PMS
	// and converges the local store toward it. The snapshot must be
	// complete before any delete happens: a fetch failure aborts the run
	// with nothing written.
	Run(ctx context.Context, accountID uuid.UUID) (SyncResult, error)
	DiscoverCatalogTarget(ctx context.Context, accountID uuid.UUID) (DiscoveryResult, error)
}

type syncUseCaseImpl struct {
	cfg        config.SyncConfig
	accounts   AccountStore
	creds      CredentialSource
	connectors ConnectorFactory
	lease      SyncLease
	reconciler *reconciler
	discoverer *discoverer
	clock      clock.Clock
	logger     *slog.Logger
}

func NewSyncUseCase(
	cfg config.SyncConfig,
	accounts AccountStore,
	lines OrderLineStore,
	creds CredentialSource,
	connectors ConnectorFactory,
	lease SyncLease,
	clk clock.Clock,
	logger *slog.Logger,
) SyncCommands {
	return &syncUseCaseImpl{
		cfg:        cfg,
		accounts:   accounts,
		creds:      creds,
		connectors: connectors,
		lease:      lease,
		reconciler: newReconciler(lines, logger),
		discoverer: newDiscoverer(cfg, logger),
		clock:      clk,
		logger:     logger,
	}
}

func (uc *syncUseCaseImpl) Run(ctx context.Context, accountID uuid.UUID) (SyncResult, error) {
	release, err := uc.lease.Acquire(ctx, accountID)
	if err != nil {
		return SyncResult{}, err
	}
	defer release()

	acc, conn, err := uc.connect(ctx, accountID)
	if err != nil {
		return SyncResult{}, err
	}

	if err := uc.resolveExternalID(ctx, acc, conn); err != nil {
		return SyncResult{}, err
	}

	targetIDs, err := uc.targetProductIDs(ctx, conn)
	if err != nil {
		return SyncResult{}, err
	}

	now := uc.clock.Now()
	windowStart := now.AddDate(0, 0, -uc.cfg.WindowDays)
	windowEnd := now.Add(time.Duration(uc.cfg.LookaheadHours) * time.Hour)

	records, result, err := uc.fetchWindow(ctx, conn, windowStart, windowEnd)
	if err != nil {
		// Incomplete snapshots must never drive deletes.
		return result, errs.Mark(err, errs.ErrReconciliationPartial)
	}
	result.Fetched = len(records)

	lines := conn.Normalize(records, targetIDs, accountID, now)
	snapshot := order.NewSnapshot(lines)

	recon, err := uc.reconciler.Reconcile(ctx, accountID, snapshot, windowStart)
	result.Upserted = recon.Upserted
	result.Deleted = recon.Deleted
	if err != nil {
		return result, err
	}

	uc.logger.Info("sync completed",
		"account_id", accountID,
		"fetched", result.Fetched,
		"upserted", result.Upserted,
		"deleted", result.Deleted,
		"pages", result.Pages,
		"sub_windows", result.SubWindows)
	return result, nil
}

func (uc *syncUseCaseImpl) DiscoverCatalogTarget(ctx context.Context, accountID uuid.UUID) (DiscoveryResult, error) {
	acc, conn, err := uc.connect(ctx, accountID)
	if err != nil {
		return DiscoveryResult{}, err
	}
	if err := uc.resolveExternalID(ctx, acc, conn); err != nil {
		return DiscoveryResult{}, err
	}
	return uc.discoverer.Discover(ctx, conn, uc.clock.Now())
}

func (uc *syncUseCaseImpl) connect(ctx context.Context, accountID uuid.UUID) (*account.Account, pms.Connector, error) {
	acc, err := uc.accounts.FindByID(ctx, accountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, errs.ErrAccountNotFound)
		}
		return nil, nil, err
	}

	creds, err := uc.creds.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	conn, err := uc.connectors.Connector(acc.PmsType, creds)
	if err != nil {
		return nil, nil, err
	}
	return acc, conn, nil
}

// resolveExternalID replaces the onboarding placeholder with the
// enterprise id the PMS reports. Resolved ids are never overwritten.
func (uc *syncUseCaseImpl) resolveExternalID(ctx context.Context, acc *account.Account, conn pms.Connector) error {
	if acc.ExternalIDResolved() {
		return nil
	}

	ent, err := conn.Enterprise(ctx)
	if err != nil {
		return err
	}
	if ent.ID == "" {
		return errs.New("pms reported an empty enterprise id")
	}

	if err := uc.accounts.ResolveExternalID(ctx, acc.ID, ent.ID); err != nil {
		return err
	}
	acc.ExternalID = ent.ID
	uc.logger.Info("resolved account external id", "account_id", acc.ID, "external_id", ent.ID)
	return nil
}

func (uc *syncUseCaseImpl) targetProductIDs(ctx context.Context, conn pms.Connector) ([]string, error) {
	if uc.cfg.TargetProductID != "" {
		return []string{uc.cfg.TargetProductID}, nil
	}

	// Only the top candidate is trusted; partial matches stay visible in
	// discovery output but never feed the reconciler.
	res, err := uc.discoverer.Discover(ctx, conn, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return []string{res.Best.ProductID}, nil
}

// fetchWindow walks the reconciliation window in fixed-size sub-windows,
// paging each one until the cursor runs out or the page ceiling is hit.
// The ceiling is a warn-and-move-on: one hot sub-window must not starve
// the rest of the range.
func (uc *syncUseCaseImpl) fetchWindow(ctx context.Context, conn pms.Connector, start, end time.Time) ([]pms.RawRecord, SyncResult, error) {
	var (
		records []pms.RawRecord
		result  SyncResult
	)

	subWindow := time.Duration(uc.cfg.SubWindowHours) * time.Hour
	for cursor := start; cursor.Before(end); cursor = cursor.Add(subWindow) {
		subEnd := cursor.Add(subWindow)
		if subEnd.After(end) {
			subEnd = end
		}
		result.SubWindows++

		window := pms.Interval{StartUTC: cursor, EndUTC: subEnd}
		pageCursor := ""
		for page := 0; ; page++ {
			if page >= uc.cfg.MaxPages {
				uc.logger.Warn("page ceiling reached, moving to next sub-window",
					"window_start", window.StartUTC, "window_end", window.EndUTC, "pages", page)
				break
			}

			res, err := conn.ListOrderItems(ctx, window, pageCursor)
			if err != nil {
				return nil, result, err
			}
			result.Pages++
			records = append(records, res.Records...)

			if res.Cursor == "" {
				break
			}
			pageCursor = res.Cursor
		}
	}
	return records, result, nil
}
