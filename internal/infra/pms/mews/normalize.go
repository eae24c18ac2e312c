package mews

import (
	"regexp"
	"strconv"
	"time"

	"treesync/internal/domain/account"
	"treesync/internal/domain/order"
	"treesync/internal/infra/pms"

	"github.com/google/uuid"
)

// Operator-entered names sometimes carry the quantity up front,
// e.g. "4 × Click A Tree".
var leadingQuantity = regexp.MustCompile(`^(\d+)\s*×`)

// Normalize maps raw records onto canonical order lines. Records that are
// canceled, that are not product orders, or that do not match the target
// product ids never reach the reconciler.
func (c *Client) Normalize(records []pms.RawRecord, targetProductIDs []string, accountID uuid.UUID, now time.Time) []order.Line {
	targets := make(map[string]struct{}, len(targetProductIDs))
	for _, id := range targetProductIDs {
		targets[id] = struct{}{}
	}

	var lines []order.Line
	for _, rec := range records {
		var (
			line order.Line
			ok   bool
		)
		switch rec.Kind {
		case pms.KindPostedItem:
			line, ok = c.normalizePostedItem(rec.PostedItem, targets, now)
		case pms.KindOrderItem:
			line, ok = c.normalizeOrderItem(rec.OrderItem, targets, now)
		case pms.KindProductAssignment:
			line, ok = c.normalizeProductAssignment(rec.ProductAssignment, targets, now)
		}
		if !ok {
			continue
		}
		line.AccountID = accountID
		line.PmsType = account.PmsMews
		lines = append(lines, line)
	}
	return lines
}

func (c *Client) normalizePostedItem(item *pms.PostedItem, targets map[string]struct{}, now time.Time) (order.Line, bool) {
	if item == nil {
		return order.Line{}, false
	}
	if _, ok := targets[item.ProductID]; !ok {
		return order.Line{}, false
	}

	qty := quantityOf(item.Count, item.Name)
	amount, currency := moneyOf(c.fallbackCur, item.Amount, item.AmountBeforeTax)

	return order.Line{
		ExternalID: item.ID,
		Quantity:   qty,
		Amount:     amount,
		Currency:   currency,
		BookedAt:   timestampOf(now, item.ConsumptionUTC, item.CreatedUTC),
	}, true
}

func (c *Client) normalizeOrderItem(item *pms.OrderItem, targets map[string]struct{}, now time.Time) (order.Line, bool) {
	if item == nil || item.Type != "ProductOrder" {
		return order.Line{}, false
	}
	// This shape reports cancellation explicitly.
	if item.CanceledUTC != nil {
		return order.Line{}, false
	}
	if _, ok := targets[item.ProductID]; !ok {
		return order.Line{}, false
	}

	qty := quantityOf(item.UnitCount, item.Name)

	// The shape only carries a unit price; the stored amount must be the
	// total. Persisting the unit price here has caused real revenue
	// misreports before.
	var (
		amount   float64
		currency = c.fallbackCur
	)
	if item.UnitAmount != nil {
		amount = item.UnitAmount.Value * float64(qty)
		if item.UnitAmount.Currency != "" {
			currency = item.UnitAmount.Currency
		}
	}

	return order.Line{
		ExternalID: item.ID,
		Quantity:   qty,
		Amount:     amount,
		Currency:   currency,
		BookedAt:   timestampOf(now, item.CreatedUTC),
		CheckInAt:  item.StartUTC,
	}, true
}

func (c *Client) normalizeProductAssignment(item *pms.ProductAssignment, targets map[string]struct{}, now time.Time) (order.Line, bool) {
	if item == nil {
		return order.Line{}, false
	}
	if _, ok := targets[item.ProductID]; !ok {
		return order.Line{}, false
	}

	qty := quantityOf(item.Count, item.Name)
	amount, currency := moneyOf(c.fallbackCur, item.Amount, item.Price)

	return order.Line{
		ExternalID: item.ID,
		Quantity:   qty,
		Amount:     amount,
		Currency:   currency,
		BookedAt:   timestampOf(now, item.StartUTC, item.CreatedUTC),
	}, true
}

// quantityOf prefers an explicit count, then a leading "<n> ×" prefix in
// the display name, then one.
func quantityOf(count int, name string) int {
	if count > 0 {
		return count
	}
	if m := leadingQuantity.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

// moneyOf takes the first amount sub-object that is present; these shapes
// already carry totals.
func moneyOf(fallbackCurrency string, candidates ...*pms.Money) (float64, string) {
	for _, m := range candidates {
		if m == nil {
			continue
		}
		currency := m.Currency
		if currency == "" {
			currency = fallbackCurrency
		}
		return m.Value, currency
	}
	return 0, fallbackCurrency
}

// timestampOf returns the first valid candidate; an unparseable date must
// never propagate, so the final fallback is the current run time.
func timestampOf(now time.Time, candidates ...*time.Time) time.Time {
	for _, t := range candidates {
		if t != nil && !t.IsZero() {
			return *t
		}
	}
	return now
}
