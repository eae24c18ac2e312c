// Package factory resolves a PMS type to its concrete connector and
// webhook handler.
package factory

import (
	"log/slog"

	"treesync/internal/domain/account"
	"treesync/internal/infra/pms"
	"treesync/internal/infra/pms/hotelspider"
	"treesync/internal/infra/pms/mews"
	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/config"
	"treesync/internal/pkg/errs"
	"treesync/internal/pkg/resilience"

	"github.com/google/uuid"
)

type Factory struct {
	cfg    config.Config
	guard  *resilience.Guard
	store  pms.LineStore
	clk    clock.Clock
	logger *slog.Logger
}

func New(cfg config.Config, guard *resilience.Guard, store pms.LineStore, clk clock.Clock, logger *slog.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		guard:  guard,
		store:  store,
		clk:    clk,
		logger: logger,
	}
}

// Connector builds the pull-side gateway. HotelSpider is webhook-only,
// so only Mews accounts can be synced.
func (f *Factory) Connector(pmsType account.PmsType, creds account.Credentials) (pms.Connector, error) {
	switch pmsType {
	case account.PmsMews:
		return mews.NewClient(f.cfg.PMS, f.cfg.Sync, creds, f.guard, f.logger), nil
	case account.PmsHotelSpider:
		return nil, errs.New("hotelspider has no pull API; orders arrive by webhook only")
	}
	return nil, errs.New("unknown pms type: " + string(pmsType))
}

// ExtractEventMeta resolves the routing envelope of a raw notification
// so the receipt path can look up the owning account before processing.
func (f *Factory) ExtractEventMeta(pmsType account.PmsType, payload []byte) (pms.EventMeta, error) {
	switch pmsType {
	case account.PmsMews:
		return mews.ExtractEventMeta(payload)
	case account.PmsHotelSpider:
		return hotelspider.ExtractEventMeta(payload)
	}
	return pms.EventMeta{}, errs.New("unknown pms type: " + string(pmsType))
}

// RetryHeaders reconstructs transport auth for replayed payloads; only
// the HotelSpider handler authenticates per request.
func (f *Factory) RetryHeaders(pmsType account.PmsType, creds account.Credentials) map[string]string {
	if pmsType == account.PmsHotelSpider {
		return map[string]string{"Authorization": hotelspider.BasicAuthHeader(creds)}
	}
	return nil
}

func (f *Factory) WebhookHandler(pmsType account.PmsType, accountID uuid.UUID, creds account.Credentials) (pms.WebhookHandler, error) {
	switch pmsType {
	case account.PmsMews:
		return mews.NewWebhookHandler(accountID, f.cfg.Sync.FallbackCurrency, f.store, f.clk, f.logger), nil
	case account.PmsHotelSpider:
		return hotelspider.NewWebhookHandler(
			accountID,
			creds,
			f.cfg.Sync.SearchTermsLower(),
			f.cfg.Sync.FallbackCurrency,
			f.store,
			f.clk,
			f.logger,
		), nil
	}
	return nil, errs.New("unknown pms type: " + string(pmsType))
}
