//go:build unit

package mews_test

import (
	"context"
	"testing"

	"treesync/internal/infra/pms/mews"
	"treesync/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envelopePayload = `{
	"EnterpriseId": "ent-1",
	"IntegrationId": "int-1",
	"Events": [
		{"Discriminator": "ServiceOrderCreated", "Value": {"Id": "so-1"}},
		{"Discriminator": "ServiceOrderUpdated", "Value": {"Id": "so-2"}},
		{"Discriminator": "RoomAssigned", "Value": {"Id": "so-3"}}
	],
	"Entities": {
		"ServiceOrders": [
			{"Id": "so-1", "ServiceId": "svc-1", "Count": 2, "Amount": {"GrossValue": 11.80, "Currency": "EUR"}, "State": "Confirmed"},
			{"Id": "so-2", "ServiceId": "svc-1", "Count": 0, "Amount": {"GrossValue": 5.90, "Currency": "EUR"}, "State": "Confirmed"}
		]
	}
}`

func TestWebhookHandler_ProcessEnvelope(t *testing.T) {
	store := newFakeLineStore()
	clk := clock.NewMockClock(now)
	handler := mews.NewWebhookHandler(testAccountID, "EUR", store, clk, testLogger())

	outcome := handler.Process(context.Background(), []byte(envelopePayload), nil)

	assert.True(t, outcome.OK())
	assert.Equal(t, 2, outcome.ProcessedOrders, "unknown event types are ignored, not failed")

	require.Contains(t, store.lines, "so-1")
	assert.Equal(t, 2, store.lines["so-1"].Quantity)
	assert.InDelta(t, 11.80, store.lines["so-1"].Amount, 0.001)
	assert.Equal(t, now, store.lines["so-1"].BookedAt)

	assert.Equal(t, 1, store.lines["so-2"].Quantity, "zero count defaults to one")
}

func TestWebhookHandler_CanceledDeletesLine(t *testing.T) {
	store := newFakeLineStore()
	handler := mews.NewWebhookHandler(testAccountID, "EUR", store, clock.NewMockClock(now), testLogger())

	created := handler.Process(context.Background(), []byte(envelopePayload), nil)
	require.True(t, created.OK())
	require.Contains(t, store.lines, "so-1")

	cancelPayload := `{
		"Events": [{"Discriminator": "ServiceOrderCanceled", "Value": {"Id": "so-1"}}],
		"Entities": {"ServiceOrders": []}
	}`
	outcome := handler.Process(context.Background(), []byte(cancelPayload), nil)

	assert.True(t, outcome.OK())
	assert.NotContains(t, store.lines, "so-1")
	assert.Contains(t, store.lines, "so-2")
}

func TestWebhookHandler_MissingEntityRecordedNotFatal(t *testing.T) {
	store := newFakeLineStore()
	handler := mews.NewWebhookHandler(testAccountID, "EUR", store, clock.NewMockClock(now), testLogger())

	payload := `{
		"Events": [
			{"Discriminator": "ServiceOrderCreated", "Value": {"Id": "ghost"}},
			{"Discriminator": "ServiceOrderCreated", "Value": {"Id": "so-1"}}
		],
		"Entities": {"ServiceOrders": [
			{"Id": "so-1", "Count": 1, "Amount": {"GrossValue": 5.90, "Currency": "EUR"}}
		]}
	}`
	outcome := handler.Process(context.Background(), []byte(payload), nil)

	assert.False(t, outcome.OK())
	assert.Len(t, outcome.Errors, 1)
	assert.Equal(t, 1, outcome.ProcessedOrders, "good events still processed")
	assert.Contains(t, store.lines, "so-1")
}

func TestWebhookHandler_MalformedPayload(t *testing.T) {
	store := newFakeLineStore()
	handler := mews.NewWebhookHandler(testAccountID, "EUR", store, clock.NewMockClock(now), testLogger())

	outcome := handler.Process(context.Background(), []byte(`{"Events": "nope"`), nil)

	assert.False(t, outcome.OK())
	assert.Empty(t, store.lines)
}
