//go:build unit

package hotelspider

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"
	"time"

	"treesync/internal/domain/account"
	"treesync/internal/domain/order"
	"treesync/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAccountID = uuid.MustParse("7d5f8a3e-2c1b-4e6f-9a0d-1b2c3d4e5f60")

type fakeLineStore struct {
	upserted []order.Line
	deleted  []string
}

func (s *fakeLineStore) Upsert(_ context.Context, line order.Line) error {
	s.upserted = append(s.upserted, line)
	return nil
}

func (s *fakeLineStore) DeleteByExternalIDs(_ context.Context, _ uuid.UUID, ids []string) error {
	s.deleted = append(s.deleted, ids...)
	return nil
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func newHandler(store *fakeLineStore, clk clock.Clock) *WebhookHandler {
	creds := account.Credentials{
		PmsType:  account.PmsHotelSpider,
		Username: "hotel-42",
		Password: "s3cret",
	}
	terms := []string{"click a tree", "tree planting"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWebhookHandler(testAccountID, creds, terms, "EUR", store, clk, logger)
}

const resNotifPayload = `<?xml version="1.0" encoding="UTF-8"?>
<OTA_HotelResNotifRQ xmlns="http://www.opentravel.org/OTA/2003/05">
  <HotelReservations>
    <HotelReservation>
      <ResGlobalInfo>
        <HotelReservationIDs>
          <HotelReservationID ResID="RES-1001"/>
        </HotelReservationIDs>
      </ResGlobalInfo>
      <Services>
        <Service ServiceRPH="svc-1" Quantity="3">
          <Price><Total AmountAfterTax="17.70" CurrencyCode="CHF"/></Price>
          <ServiceDetails><ServiceDescription><Text>Click a Tree donation</Text></ServiceDescription></ServiceDetails>
        </Service>
        <Service ServiceRPH="svc-2" Quantity="1">
          <Price><Total AmountAfterTax="25.00" CurrencyCode="CHF"/></Price>
          <ServiceDetails><ServiceDescription><Text>Late checkout</Text></ServiceDescription></ServiceDetails>
        </Service>
      </Services>
    </HotelReservation>
  </HotelReservations>
</OTA_HotelResNotifRQ>`

func TestWebhookHandler_Process(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("upserts tree services only", func(t *testing.T) {
		store := &fakeLineStore{}
		h := newHandler(store, clk)

		out := h.Process(context.Background(), []byte(resNotifPayload), map[string]string{
			"Authorization": basicAuth("hotel-42", "s3cret"),
		})

		assert.True(t, out.OK())
		assert.Equal(t, 1, out.ProcessedOrders)
		require.Len(t, store.upserted, 1)

		line := store.upserted[0]
		assert.Equal(t, "hs-RES-1001-svc-1", line.ExternalID)
		assert.Equal(t, 3, line.Quantity)
		assert.InDelta(t, 17.70, line.Amount, 0.001)
		assert.Equal(t, "CHF", line.Currency)
		assert.Equal(t, now, line.BookedAt)
		assert.Equal(t, account.PmsHotelSpider, line.PmsType)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		store := &fakeLineStore{}
		h := newHandler(store, clk)

		out := h.Process(context.Background(), []byte(resNotifPayload), map[string]string{
			"Authorization": basicAuth("hotel-42", "wrong"),
		})

		assert.False(t, out.OK())
		assert.Empty(t, store.upserted)
	})

	t.Run("rejects missing auth header", func(t *testing.T) {
		store := &fakeLineStore{}
		h := newHandler(store, clk)

		out := h.Process(context.Background(), []byte(resNotifPayload), map[string]string{})

		assert.False(t, out.OK())
	})

	t.Run("malformed xml reported as error", func(t *testing.T) {
		store := &fakeLineStore{}
		h := newHandler(store, clk)

		out := h.Process(context.Background(), []byte("<not-xml"), map[string]string{
			"Authorization": basicAuth("hotel-42", "s3cret"),
		})

		assert.False(t, out.OK())
		assert.Empty(t, store.upserted)
	})

	t.Run("quantity defaults to one when absent", func(t *testing.T) {
		payload := `<OTA_HotelResNotifRQ>
  <HotelReservations><HotelReservation>
    <ResGlobalInfo><HotelReservationIDs><HotelReservationID ResID="RES-2"/></HotelReservationIDs></ResGlobalInfo>
    <Services>
      <Service ServiceRPH="svc-9">
        <Price><Total AmountAfterTax="5.90"/></Price>
        <ServiceDetails><ServiceDescription><Text>tree planting</Text></ServiceDescription></ServiceDetails>
      </Service>
    </Services>
  </HotelReservation></HotelReservations>
</OTA_HotelResNotifRQ>`
		store := &fakeLineStore{}
		h := newHandler(store, clk)

		out := h.Process(context.Background(), []byte(payload), map[string]string{
			"Authorization": basicAuth("hotel-42", "s3cret"),
		})

		assert.Equal(t, 1, out.ProcessedOrders)
		require.Len(t, store.upserted, 1)
		assert.Equal(t, 1, store.upserted[0].Quantity)
		assert.Equal(t, "EUR", store.upserted[0].Currency)
	})
}
