// Package mews implements the Connector api for the Mews Connector API:
// JSON-over-POST endpoints, cursor pagination, bounded time filters.
package mews

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"treesync/internal/domain/account"
	"treesync/internal/infra/pms"
	"treesync/internal/pkg/config"
	"treesync/internal/pkg/errs"
	"treesync/internal/pkg/resilience"
)

type Client struct {
	baseURL     string
	clientName  string
	creds       account.Credentials
	fallbackCur string
	httpClient  *http.Client
	guard       *resilience.Guard
	cfg         config.PMSConfig
	logger      *slog.Logger
}

func NewClient(cfg config.PMSConfig, syncCfg config.SyncConfig, creds account.Credentials, guard *resilience.Guard, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     cfg.MewsBaseURL,
		clientName:  cfg.MewsClientName,
		creds:       creds,
		fallbackCur: syncCfg.FallbackCurrency,
		httpClient:  &http.Client{Timeout: cfg.CallTimeout},
		guard:       guard,
		cfg:         cfg,
		logger:      logger,
	}
}

type apiError struct {
	Message    string `json:"Message"`
	StatusCode int    `json:"-"`
}

func (e *apiError) Error() string {
	return e.Message
}

// classify maps an HTTP status onto the upstream error taxonomy.
func classify(statusCode int, err error) error {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return errs.Mark(err, errs.ErrUpstreamRateLimited)
	case statusCode >= 500:
		return errs.Mark(err, errs.ErrUpstreamServerError)
	case statusCode >= 400:
		return errs.Mark(err, errs.ErrUpstreamClientError)
	default:
		return err
	}
}

// call issues one API request through the resilience guard, retrying
// retryable failures with exponential backoff. Breaker rejections come
// back immediately and are never retried within the call.
func (c *Client) call(ctx context.Context, endpoint string, body map[string]any, out any) error {
	body["ClientToken"] = c.creds.ClientToken
	body["AccessToken"] = c.creds.AccessToken
	body["Client"] = c.clientName

	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode request")
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryBaseDelay * (1 << (attempt - 1))
			c.logger.Warn("retrying PMS call", "endpoint", endpoint, "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = c.guard.Do(ctx, func() error {
			return c.doRequest(ctx, endpoint, payload, out)
		})
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, errs.ErrCircuitOpen) || !errs.Retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) doRequest(ctx context.Context, endpoint string, payload []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errs.Mark(err, errs.ErrUpstreamTimeout)
		}
		return errs.Mark(err, errs.ErrUpstreamServerError)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		apiErr.StatusCode = resp.StatusCode
		c.logger.Warn("PMS call failed",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)
		return classify(resp.StatusCode, &apiErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response")
	}

	c.logger.Debug("PMS call succeeded", "endpoint", endpoint, "duration", time.Since(start))
	return nil
}

const pageSize = 1000

type limitation struct {
	Count  int    `json:"Count"`
	Cursor string `json:"Cursor,omitempty"`
}

type configurationResponse struct {
	Enterprise struct {
		ID   string `json:"Id"`
		Name string `json:"Name"`
	} `json:"Enterprise"`
}

func (c *Client) Enterprise(ctx context.Context) (pms.Enterprise, error) {
	var resp configurationResponse
	if err := c.call(ctx, "configuration/get", map[string]any{}, &resp); err != nil {
		return pms.Enterprise{}, err
	}
	return pms.Enterprise{ID: resp.Enterprise.ID, Name: resp.Enterprise.Name}, nil
}

type productsResponse struct {
	Products []struct {
		ID        string            `json:"Id"`
		ServiceID string            `json:"ServiceId"`
		Names     map[string]string `json:"Names"`
		Name      string            `json:"Name"`
		IsActive  *bool             `json:"IsActive"`
	} `json:"Products"`
	Cursor string `json:"Cursor"`
}

// ListProducts fetches one catalog page. IncludeDefault must be true or
// default products are silently excluded.
func (c *Client) ListProducts(ctx context.Context, serviceIDs []string, cursor string) (pms.ProductPage, error) {
	body := map[string]any{
		"Limitation": limitation{Count: pageSize, Cursor: cursor},
	}
	if cursor == "" {
		body["ServiceIds"] = serviceIDs
		body["IncludeDefault"] = true
	}

	var resp productsResponse
	if err := c.call(ctx, "products/getAll", body, &resp); err != nil {
		return pms.ProductPage{}, err
	}

	page := pms.ProductPage{Cursor: resp.Cursor}
	for _, p := range resp.Products {
		names := p.Names
		if len(names) == 0 && p.Name != "" {
			names = map[string]string{"en-US": p.Name}
		}
		active := p.IsActive == nil || *p.IsActive
		page.Products = append(page.Products, pms.Product{
			ID:        p.ID,
			Names:     names,
			ServiceID: p.ServiceID,
			Active:    active,
		})
	}
	return page, nil
}

type orderItemsResponse struct {
	OrderItems []orderItemPayload `json:"OrderItems"`
	Cursor     string             `json:"Cursor"`
}

type orderItemPayload struct {
	ID        string `json:"Id"`
	ServiceID string `json:"ServiceId"`
	Type      string `json:"Type"`
	Name      string `json:"Name"`
	Data      struct {
		Product struct {
			ProductID string `json:"ProductId"`
		} `json:"Product"`
	} `json:"Data"`
	UnitCount  int `json:"UnitCount"`
	UnitAmount struct {
		GrossValue float64 `json:"GrossValue"`
		Currency   string  `json:"Currency"`
	} `json:"UnitAmount"`
	StartUTC        *time.Time `json:"StartUtc"`
	CreatedUTC      *time.Time `json:"CreatedUtc"`
	CanceledUTC     *time.Time `json:"CanceledUtc"`
	AccountingState string     `json:"AccountingState"`
}

// ListOrderItems fetches one page of order items for a bounded time
// range. The UpdatedUtc filter is required on every request, including
// pagination requests.
func (c *Client) ListOrderItems(ctx context.Context, window pms.Interval, cursor string) (pms.OrderItemPage, error) {
	body := map[string]any{
		"UpdatedUtc": map[string]string{
			"StartUtc": window.StartUTC.UTC().Format(time.RFC3339),
			"EndUtc":   window.EndUTC.UTC().Format(time.RFC3339),
		},
		"Limitation": limitation{Count: pageSize, Cursor: cursor},
	}

	var resp orderItemsResponse
	if err := c.call(ctx, "orderitems/getAll", body, &resp); err != nil {
		return pms.OrderItemPage{}, err
	}

	page := pms.OrderItemPage{Cursor: resp.Cursor}
	for _, oi := range resp.OrderItems {
		rec := pms.RawRecord{
			Kind: pms.KindOrderItem,
			OrderItem: &pms.OrderItem{
				ID:              oi.ID,
				ServiceID:       oi.ServiceID,
				Type:            oi.Type,
				ProductID:       oi.Data.Product.ProductID,
				Name:            oi.Name,
				UnitCount:       oi.UnitCount,
				StartUTC:        oi.StartUTC,
				CreatedUTC:      oi.CreatedUTC,
				CanceledUTC:     oi.CanceledUTC,
				AccountingState: oi.AccountingState,
			},
		}
		if oi.UnitAmount.Currency != "" || oi.UnitAmount.GrossValue != 0 {
			rec.OrderItem.UnitAmount = &pms.Money{
				Value:    oi.UnitAmount.GrossValue,
				Currency: oi.UnitAmount.Currency,
			}
		}
		page.Records = append(page.Records, rec)
	}
	return page, nil
}
