// Package hotelspider handles OTA_HotelResNotifRQ notifications from the
// HotelSpider channel manager. There is no pull API worth syncing from;
// orders arrive exclusively by webhook.
package hotelspider

import (
	"context"
	"encoding/base64"
	"encoding/xml"
	"log/slog"
	"strconv"
	"strings"

	"treesync/internal/domain/account"
	"treesync/internal/domain/order"
	"treesync/internal/infra/pms"
	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/cryptobox"
	"treesync/internal/pkg/errs"

	"github.com/google/uuid"
)

type resNotification struct {
	XMLName      xml.Name         `xml:"OTA_HotelResNotifRQ"`
	Reservations []resReservation `xml:"HotelReservations>HotelReservation"`
}

type resReservation struct {
	ReservationIDs []struct {
		ResID string `xml:"ResID,attr"`
	} `xml:"ResGlobalInfo>HotelReservationIDs>HotelReservationID"`
	Services []resService `xml:"Services>Service"`
}

func (r resReservation) resID() string {
	if len(r.ReservationIDs) == 0 {
		return "unknown"
	}
	return r.ReservationIDs[0].ResID
}

type resService struct {
	ID       string `xml:"ServiceRPH,attr"`
	Name     string `xml:"ServiceDetails>ServiceDescription>Text"`
	Quantity string `xml:"Quantity,attr"`
	Amount   struct {
		Total    string `xml:"AmountAfterTax,attr"`
		Currency string `xml:"CurrencyCode,attr"`
	} `xml:"Price>Total"`
}

type propertyRef struct {
	XMLName      xml.Name `xml:"OTA_HotelResNotifRQ"`
	Reservations []struct {
		Properties []struct {
			HotelCode string `xml:"HotelCode,attr"`
		} `xml:"RoomStays>RoomStay>BasicPropertyInfo"`
	} `xml:"HotelReservations>HotelReservation"`
}

// ExtractEventMeta reads the hotel code out of a raw OTA payload without
// processing it. The hotel code identifies the account.
func ExtractEventMeta(payload []byte) (pms.EventMeta, error) {
	var ref propertyRef
	if err := xml.Unmarshal(payload, &ref); err != nil {
		return pms.EventMeta{}, errs.Mark(errs.Wrap(err, "malformed OTA payload"), errs.ErrWebhookBadPayload)
	}
	for _, res := range ref.Reservations {
		for _, prop := range res.Properties {
			if prop.HotelCode != "" {
				return pms.EventMeta{AccountRef: prop.HotelCode, EventType: "OTA_HotelResNotifRQ"}, nil
			}
		}
	}
	return pms.EventMeta{}, errs.Mark(errs.New("OTA payload carries no hotel code"), errs.ErrWebhookBadPayload)
}

type WebhookHandler struct {
	accountID   uuid.UUID
	creds       account.Credentials
	searchTerms []string
	fallbackCur string
	store       pms.LineStore
	clk         clock.Clock
	logger      *slog.Logger
}

func NewWebhookHandler(
	accountID uuid.UUID,
	creds account.Credentials,
	searchTerms []string,
	fallbackCurrency string,
	store pms.LineStore,
	clk clock.Clock,
	logger *slog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		accountID:   accountID,
		creds:       creds,
		searchTerms: searchTerms,
		fallbackCur: fallbackCurrency,
		store:       store,
		clk:         clk,
		logger:      logger,
	}
}

// Process authenticates via HTTP Basic Auth against the stored credential
// bundle, then extracts tree services from the OTA reservation payload.
func (h *WebhookHandler) Process(ctx context.Context, payload []byte, headers map[string]string) pms.WebhookOutcome {
	if !h.authorized(headers) {
		return pms.WebhookOutcome{Errors: []string{"basic auth validation failed"}}
	}

	var notif resNotification
	if err := xml.Unmarshal(payload, &notif); err != nil {
		return pms.WebhookOutcome{Errors: []string{"malformed OTA payload: " + err.Error()}}
	}

	var outcome pms.WebhookOutcome
	for _, res := range notif.Reservations {
		for _, svc := range res.Services {
			if !h.isTreeService(svc.Name) {
				continue
			}

			quantity, err := strconv.Atoi(strings.TrimSpace(svc.Quantity))
			if err != nil || quantity <= 0 {
				quantity = 1
			}
			amount, err := strconv.ParseFloat(strings.TrimSpace(svc.Amount.Total), 64)
			if err != nil {
				amount = 0
			}
			currency := svc.Amount.Currency
			if currency == "" {
				currency = h.fallbackCur
			}

			line := order.Line{
				ExternalID: externalID(res.resID(), svc.ID),
				AccountID:  h.accountID,
				Quantity:   quantity,
				Amount:     amount,
				Currency:   currency,
				BookedAt:   h.clk.Now(),
				PmsType:    account.PmsHotelSpider,
			}
			if err := h.store.Upsert(ctx, line); err != nil {
				outcome.Errors = append(outcome.Errors, err.Error())
				continue
			}
			outcome.ProcessedOrders++
		}
	}
	return outcome
}

// BasicAuthHeader rebuilds the Authorization value a replayed payload
// needs; stored events keep only the body.
func BasicAuthHeader(creds account.Credentials) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds.Username+":"+creds.Password))
}

func (h *WebhookHandler) authorized(headers map[string]string) bool {
	auth := headers["Authorization"]
	if auth == "" {
		auth = headers["authorization"]
	}
	if !strings.HasPrefix(auth, "Basic ") {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
	if err != nil {
		return false
	}
	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return false
	}
	return cryptobox.ConstantTimeEqual(username, h.creds.Username) &&
		cryptobox.ConstantTimeEqual(password, h.creds.Password)
}

func (h *WebhookHandler) isTreeService(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range h.searchTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// externalID namespaces the service id by reservation; HotelSpider service
// ids repeat across reservations.
func externalID(resID, serviceID string) string {
	return "hs-" + resID + "-" + serviceID
}
