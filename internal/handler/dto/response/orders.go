package response

import (
	"time"

	"treesync/internal/usecase/queries"
)

type OrderLineResponse struct {
	ExternalID string  `json:"external_id"`
	Quantity   int     `json:"quantity"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	BookedAt   int64   `json:"booked_at"`
	CheckInAt  *int64  `json:"check_in_at,omitempty"`
	PmsType    string  `json:"pms_type"`
}

type AccountOrdersResponse struct {
	AccountID  string              `json:"account_id"`
	Lines      []OrderLineResponse `json:"lines"`
	TotalTrees int                 `json:"total_trees"`
}

func FromAccountOrders(v *queries.AccountOrdersView) *AccountOrdersResponse {
	resp := &AccountOrdersResponse{
		AccountID:  v.AccountID.String(),
		Lines:      make([]OrderLineResponse, len(v.Lines)),
		TotalTrees: v.TotalTrees,
	}
	for i, l := range v.Lines {
		resp.Lines[i] = OrderLineResponse{
			ExternalID: l.ExternalID,
			Quantity:   l.Quantity,
			Amount:     l.Amount,
			Currency:   l.Currency,
			BookedAt:   l.BookedAt.Unix(),
			CheckInAt:  unixPtr(l.CheckInAt),
			PmsType:    string(l.PmsType),
		}
	}
	return resp
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
