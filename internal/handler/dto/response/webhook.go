package response

import (
	"treesync/internal/usecase/commands"
)

type WebhookAckResponse struct {
	EventID         string `json:"event_id"`
	Processed       bool   `json:"processed"`
	ProcessedOrders int    `json:"processed_orders"`
}

func FromReceiveResult(r commands.ReceiveResult) *WebhookAckResponse {
	return &WebhookAckResponse{
		EventID:         r.EventID.String(),
		Processed:       r.Processed,
		ProcessedOrders: r.ProcessedOrders,
	}
}

type RetryStatsResponse struct {
	Scanned   int  `json:"scanned"`
	Attempted int  `json:"attempted"`
	Succeeded int  `json:"succeeded"`
	Failed    int  `json:"failed"`
	Exhausted int  `json:"exhausted"`
	Alerted   bool `json:"alerted"`
}

func FromRetryStats(s commands.RetryStats) *RetryStatsResponse {
	return &RetryStatsResponse{
		Scanned:   s.Scanned,
		Attempted: s.Attempted,
		Succeeded: s.Succeeded,
		Failed:    s.Failed,
		Exhausted: s.Exhausted,
		Alerted:   s.Alerted,
	}
}
