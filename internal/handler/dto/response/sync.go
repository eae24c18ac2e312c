package response

import (
	"treesync/internal/usecase/commands"
)

type SyncResultResponse struct {
	Fetched    int `json:"fetched"`
	Upserted   int `json:"upserted"`
	Deleted    int `json:"deleted"`
	Pages      int `json:"pages"`
	SubWindows int `json:"sub_windows"`
}

func FromSyncResult(r commands.SyncResult) *SyncResultResponse {
	return &SyncResultResponse{
		Fetched:    r.Fetched,
		Upserted:   r.Upserted,
		Deleted:    r.Deleted,
		Pages:      r.Pages,
		SubWindows: r.SubWindows,
	}
}

type DiscoveryCandidateResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ServiceID string `json:"service_id"`
	Match     string `json:"match"`
	Term      string `json:"term"`
}

type DiscoveryResponse struct {
	Best       DiscoveryCandidateResponse   `json:"best"`
	Candidates []DiscoveryCandidateResponse `json:"candidates"`
	Records    int                          `json:"records_scanned"`
	Services   int                          `json:"services_found"`
	Products   int                          `json:"products_checked"`
}

func FromDiscoveryResult(r commands.DiscoveryResult) *DiscoveryResponse {
	resp := &DiscoveryResponse{
		Best:       fromCandidate(r.Best),
		Candidates: make([]DiscoveryCandidateResponse, len(r.Candidates)),
		Records:    r.Stats.RecordsScanned,
		Services:   r.Stats.ServicesFound,
		Products:   r.Stats.ProductsChecked,
	}
	for i, c := range r.Candidates {
		resp.Candidates[i] = fromCandidate(c)
	}
	return resp
}

func fromCandidate(c commands.DiscoveryCandidate) DiscoveryCandidateResponse {
	return DiscoveryCandidateResponse{
		ProductID: c.ProductID,
		Name:      c.Name,
		ServiceID: c.ServiceID,
		Match:     string(c.Match),
		Term:      c.Term,
	}
}
