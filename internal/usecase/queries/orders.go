package queries

import (
	"context"
	"time"

	"treesync/internal/domain/account"
	"treesync/internal/domain/order"
	"treesync/internal/infra"
	"treesync/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderLineView is the read model served over HTTP: one reconciled line
// plus the totals block computed over the account's lines.
type OrderLineView struct {
	ExternalID string
	Quantity   int
	Amount     float64
	Currency   string
	BookedAt   time.Time
	CheckInAt  *time.Time
	PmsType    account.PmsType
}

type AccountOrdersView struct {
	AccountID  uuid.UUID
	Lines      []OrderLineView
	TotalTrees int
}

type OrderQueries interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) (*AccountOrdersView, error)
}

type AccountReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
}

type OrderLineReadStore interface {
	FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]order.Line, error)
}

type orderQueriesImpl struct {
	accounts AccountReadStore
	lines    OrderLineReadStore
}

func NewOrderQueries(accounts AccountReadStore, lines OrderLineReadStore) OrderQueries {
	return &orderQueriesImpl{accounts: accounts, lines: lines}
}

func (q *orderQueriesImpl) ListByAccount(ctx context.Context, accountID uuid.UUID) (*AccountOrdersView, error) {
	if _, err := q.accounts.FindByID(ctx, accountID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAccountNotFound)
		}
		return nil, err
	}

	lines, err := q.lines.FindAllByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	view := &AccountOrdersView{AccountID: accountID, Lines: make([]OrderLineView, 0, len(lines))}
	for _, l := range lines {
		view.Lines = append(view.Lines, OrderLineView{
			ExternalID: l.ExternalID,
			Quantity:   l.Quantity,
			Amount:     l.Amount,
			Currency:   l.Currency,
			BookedAt:   l.BookedAt,
			CheckInAt:  l.CheckInAt,
			PmsType:    l.PmsType,
		})
		view.TotalTrees += l.Quantity
	}
	return view, nil
}
