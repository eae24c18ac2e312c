// Package pms holds the wire-level types and ports shared by the concrete
// property-management-system connectors.
package pms

import (
	"context"
	"time"

	"treesync/internal/domain/order"

	"github.com/google/uuid"
)

// Interval is a bounded UTC time range accepted by the listing endpoints.
type Interval struct {
	StartUTC time.Time
	EndUTC   time.Time
}

type Enterprise struct {
	ID   string
	Name string
}

// Product is a PMS-defined sellable item. Reference data only: fetched
// fresh each discovery/sync run, never persisted.
type Product struct {
	ID        string
	Names     map[string]string
	ServiceID string
	Active    bool
}

// FirstName returns an arbitrary-but-stable display name for logging.
func (p Product) FirstName() string {
	for _, lang := range [...]string{"en-US", "en-GB", "de-DE"} {
		if n, ok := p.Names[lang]; ok && n != "" {
			return n
		}
	}
	for _, n := range p.Names {
		if n != "" {
			return n
		}
	}
	return "Unknown"
}

// RecordKind discriminates the raw record shapes the API generations use
// for the same logical entity.
type RecordKind string

const (
	KindPostedItem        RecordKind = "posted_item"
	KindOrderItem         RecordKind = "order_item"
	KindProductAssignment RecordKind = "product_assignment"
)

// RawRecord is the tagged union over the three known shapes. Exactly one
// variant pointer is set, matching Kind.
type RawRecord struct {
	Kind              RecordKind
	PostedItem        *PostedItem
	OrderItem         *OrderItem
	ProductAssignment *ProductAssignment
}

type Money struct {
	Value    float64
	Currency string
}

// PostedItem is the oldest shape: total amount, consumption timestamp.
type PostedItem struct {
	ID              string
	ProductID       string
	Name            string
	Count           int
	Amount          *Money
	AmountBeforeTax *Money
	ConsumptionUTC  *time.Time
	CreatedUTC      *time.Time
	State           string
}

// OrderItem is the current shape: unit price and unit count, the total
// must be computed. StartUTC carries the check-in date of the linked
// reservation. CanceledUTC is the only shape-level cancellation signal.
type OrderItem struct {
	ID              string
	ServiceID       string
	Type            string
	ProductID       string
	Name            string
	UnitCount       int
	UnitAmount      *Money
	StartUTC        *time.Time
	CreatedUTC      *time.Time
	CanceledUTC     *time.Time
	AccountingState string
}

// ProductAssignment is the legacy bundle shape.
type ProductAssignment struct {
	ID         string
	ProductID  string
	Name       string
	Count      int
	Amount     *Money
	Price      *Money
	StartUTC   *time.Time
	CreatedUTC *time.Time
	State      string
}

// ExternalID returns the line identifier of whichever variant is set.
func (r RawRecord) ExternalID() string {
	switch r.Kind {
	case KindPostedItem:
		return r.PostedItem.ID
	case KindOrderItem:
		return r.OrderItem.ID
	case KindProductAssignment:
		return r.ProductAssignment.ID
	}
	return ""
}

// OrderItemPage is one page of the order-item listing plus the opaque
// cursor for the next page; an empty cursor means the page was the last.
type OrderItemPage struct {
	Records []RawRecord
	Cursor  string
}

type ProductPage struct {
	Products []Product
	Cursor   string
}

// Connector is the per-account gateway to one PMS. Implementations route
// every call through the shared resilience guard.
type Connector interface {
	Enterprise(ctx context.Context) (Enterprise, error)
	ListOrderItems(ctx context.Context, window Interval, cursor string) (OrderItemPage, error)
	ListProducts(ctx context.Context, serviceIDs []string, cursor string) (ProductPage, error)
	// Normalize maps raw records onto canonical lines, dropping records
	// that are canceled or that do not belong to the target products.
	Normalize(records []RawRecord, targetProductIDs []string, accountID uuid.UUID, now time.Time) []order.Line
}

// LineStore is the narrow persistence surface webhook handlers need.
type LineStore interface {
	Upsert(ctx context.Context, line order.Line) error
	DeleteByExternalIDs(ctx context.Context, accountID uuid.UUID, externalIDs []string) error
}

// WebhookOutcome reports per-event processing results without raising
// past the handler boundary.
type WebhookOutcome struct {
	ProcessedOrders int
	Errors          []string
}

func (o WebhookOutcome) OK() bool {
	return len(o.Errors) == 0
}

// WebhookHandler processes one asynchronously delivered notification.
type WebhookHandler interface {
	Process(ctx context.Context, payload []byte, headers map[string]string) WebhookOutcome
}

// EventMeta is the routing envelope of a notification: which property it
// belongs to and what kind of event it carries. AccountRef matches the
// account's PMS-assigned external id.
type EventMeta struct {
	AccountRef string
	EventType  string
	EventID    *string
}
