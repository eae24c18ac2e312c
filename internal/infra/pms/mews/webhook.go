package mews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"treesync/internal/domain/account"
	"treesync/internal/domain/order"
	"treesync/internal/infra/pms"
	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/errs"

	"github.com/google/uuid"
)

// Envelope is the push-notification wrapper: events reference entities
// shipped alongside in the same payload.
type Envelope struct {
	EnterpriseID  string `json:"EnterpriseId"`
	IntegrationID string `json:"IntegrationId"`
	Events        []struct {
		Discriminator string `json:"Discriminator"`
		Value         struct {
			ID string `json:"Id"`
		} `json:"Value"`
	} `json:"Events"`
	Entities struct {
		ServiceOrders []ServiceOrder `json:"ServiceOrders"`
	} `json:"Entities"`
}

type ServiceOrder struct {
	ID        string `json:"Id"`
	ServiceID string `json:"ServiceId"`
	Count     int    `json:"Count"`
	Amount    *struct {
		GrossValue float64 `json:"GrossValue"`
		Currency   string  `json:"Currency"`
	} `json:"Amount"`
	State string `json:"State"`
}

// ExtractEventMeta pulls the routing envelope out of a raw payload
// without processing it. The enterprise id identifies the account.
func ExtractEventMeta(payload []byte) (pms.EventMeta, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return pms.EventMeta{}, errs.Mark(errs.Wrap(err, "malformed mews envelope"), errs.ErrWebhookBadPayload)
	}
	if env.EnterpriseID == "" {
		return pms.EventMeta{}, errs.Mark(errs.New("mews envelope has no enterprise id"), errs.ErrWebhookBadPayload)
	}

	meta := pms.EventMeta{AccountRef: env.EnterpriseID, EventType: "Unknown"}
	if len(env.Events) > 0 {
		meta.EventType = env.Events[0].Discriminator
		if id := env.Events[0].Value.ID; id != "" {
			meta.EventID = &id
		}
	}
	return meta, nil
}

type WebhookHandler struct {
	accountID   uuid.UUID
	fallbackCur string
	store       pms.LineStore
	clk         clock.Clock
	logger      *slog.Logger
}

func NewWebhookHandler(accountID uuid.UUID, fallbackCurrency string, store pms.LineStore, clk clock.Clock, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		accountID:   accountID,
		fallbackCur: fallbackCurrency,
		store:       store,
		clk:         clk,
		logger:      logger,
	}
}

// Process applies every event in the envelope. One bad event never blocks
// the rest; its error is recorded in the outcome instead.
func (h *WebhookHandler) Process(ctx context.Context, payload []byte, _ map[string]string) pms.WebhookOutcome {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return pms.WebhookOutcome{Errors: []string{"malformed envelope: " + err.Error()}}
	}

	orders := make(map[string]ServiceOrder, len(envelope.Entities.ServiceOrders))
	for _, so := range envelope.Entities.ServiceOrders {
		orders[so.ID] = so
	}

	var outcome pms.WebhookOutcome
	for _, event := range envelope.Events {
		switch event.Discriminator {
		case "ServiceOrderCreated", "ServiceOrderUpdated":
			so, ok := orders[event.Value.ID]
			if !ok {
				outcome.Errors = append(outcome.Errors, fmt.Sprintf("entity %s missing from envelope", event.Value.ID))
				continue
			}
			if err := h.upsertOrder(ctx, so); err != nil {
				outcome.Errors = append(outcome.Errors, err.Error())
				continue
			}
			outcome.ProcessedOrders++
		case "ServiceOrderCanceled":
			if err := h.store.DeleteByExternalIDs(ctx, h.accountID, []string{event.Value.ID}); err != nil {
				outcome.Errors = append(outcome.Errors, err.Error())
				continue
			}
			outcome.ProcessedOrders++
		default:
			h.logger.Warn("ignoring unknown webhook event type",
				"event_type", event.Discriminator,
				"event_id", event.Value.ID,
			)
		}
	}
	return outcome
}

func (h *WebhookHandler) upsertOrder(ctx context.Context, so ServiceOrder) error {
	quantity := so.Count
	if quantity <= 0 {
		quantity = 1
	}

	var (
		amount   float64
		currency = h.fallbackCur
	)
	if so.Amount != nil {
		amount = so.Amount.GrossValue
		if so.Amount.Currency != "" {
			currency = so.Amount.Currency
		}
	}

	return h.store.Upsert(ctx, order.Line{
		ExternalID: so.ID,
		AccountID:  h.accountID,
		Quantity:   quantity,
		Amount:     amount,
		Currency:   currency,
		BookedAt:   h.clk.Now(),
		PmsType:    account.PmsMews,
	})
}
