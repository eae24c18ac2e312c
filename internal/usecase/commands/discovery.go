package commands

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"treesync/internal/infra/pms"
	"treesync/internal/pkg/config"
	"treesync/internal/pkg/errs"
)

type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchPartial MatchKind = "partial"
)

type DiscoveryCandidate struct {
	ProductID string
	Name      string
	ServiceID string
	Match     MatchKind
	Term      string
}

type DiscoveryStats struct {
	RecordsScanned  int
	ServicesFound   int
	ProductsChecked int
}

// DiscoveryResult ranks catalog products that look like the tree-planting
// item. Best is the highest-confidence candidate; at equal confidence the
// first one seen wins, so repeated runs over an unchanged catalog are
// stable.
type DiscoveryResult struct {
	Best       DiscoveryCandidate
	Candidates []DiscoveryCandidate
	Stats      DiscoveryStats
}

type discoverer struct {
	cfg    config.SyncConfig
	logger *slog.Logger
}

func newDiscoverer(cfg config.SyncConfig, logger *slog.Logger) *discoverer {
	return &discoverer{cfg: cfg, logger: logger}
}

// Discover scans recent order items for the services actually in use,
// lists their products and matches localized names against the configured
// search terms.
func (d *discoverer) Discover(ctx context.Context, conn pms.Connector, now time.Time) (DiscoveryResult, error) {
	window := pms.Interval{
		StartUTC: now.AddDate(0, 0, -d.cfg.DiscoveryDays),
		EndUTC:   now,
	}

	var stats DiscoveryStats
	serviceIDs, scanned, err := d.collectServiceIDs(ctx, conn, window)
	if err != nil {
		return DiscoveryResult{}, err
	}
	stats.RecordsScanned = scanned
	stats.ServicesFound = len(serviceIDs)

	products, err := d.collectProducts(ctx, conn, serviceIDs)
	if err != nil {
		return DiscoveryResult{}, err
	}
	stats.ProductsChecked = len(products)

	candidates := d.match(products)
	if len(candidates) == 0 {
		return DiscoveryResult{Stats: stats}, errs.Mark(
			errs.New("no catalog product matches the configured search terms"),
			errs.ErrCatalogTargetNotFound,
		)
	}

	d.logger.Info("catalog target discovered",
		"product_id", candidates[0].ProductID,
		"name", candidates[0].Name,
		"match", string(candidates[0].Match),
		"candidates", len(candidates))

	return DiscoveryResult{
		Best:       candidates[0],
		Candidates: candidates,
		Stats:      stats,
	}, nil
}

func (d *discoverer) collectServiceIDs(ctx context.Context, conn pms.Connector, window pms.Interval) ([]string, int, error) {
	seen := make(map[string]struct{})
	var ids []string
	var scanned int

	cursor := ""
	for page := 0; page < d.cfg.DiscoveryPages; page++ {
		res, err := conn.ListOrderItems(ctx, window, cursor)
		if err != nil {
			return nil, scanned, err
		}
		scanned += len(res.Records)
		for _, rec := range res.Records {
			if rec.Kind != pms.KindOrderItem || rec.OrderItem.ServiceID == "" {
				continue
			}
			if _, ok := seen[rec.OrderItem.ServiceID]; ok {
				continue
			}
			seen[rec.OrderItem.ServiceID] = struct{}{}
			ids = append(ids, rec.OrderItem.ServiceID)
		}
		if res.Cursor == "" {
			break
		}
		cursor = res.Cursor
	}
	return ids, scanned, nil
}

func (d *discoverer) collectProducts(ctx context.Context, conn pms.Connector, serviceIDs []string) ([]pms.Product, error) {
	var products []pms.Product
	cursor := ""
	for page := 0; page < d.cfg.MaxPages; page++ {
		res, err := conn.ListProducts(ctx, serviceIDs, cursor)
		if err != nil {
			return nil, err
		}
		products = append(products, res.Products...)
		if res.Cursor == "" {
			break
		}
		cursor = res.Cursor
	}
	return products, nil
}

// match classifies every product against the search terms. Exact hits
// (the whole name equals a term, or a bracketed or parenthesized term
// appears inside it) rank before partial substring hits; within the same
// rank the catalog order is preserved.
func (d *discoverer) match(products []pms.Product) []DiscoveryCandidate {
	terms := d.cfg.SearchTermsLower()

	var candidates []DiscoveryCandidate
	for _, p := range products {
		if !p.Active {
			continue
		}
		if c, ok := matchProduct(p, terms); ok {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Match == MatchExact && candidates[j].Match != MatchExact
	})
	return candidates
}

func matchProduct(p pms.Product, terms []string) (DiscoveryCandidate, bool) {
	best := DiscoveryCandidate{ProductID: p.ID, ServiceID: p.ServiceID}
	found := false

	for _, name := range localizedNames(p) {
		lower := strings.ToLower(strings.TrimSpace(name))
		for _, term := range terms {
			switch {
			case lower == term,
				strings.Contains(lower, "["+term+"]"),
				strings.Contains(lower, "("+term+")"):
				best.Name = name
				best.Match = MatchExact
				best.Term = term
				return best, true
			case strings.Contains(lower, term):
				if !found {
					best.Name = name
					best.Match = MatchPartial
					best.Term = term
					found = true
				}
			}
		}
	}
	return best, found
}

// localizedNames returns the product's names in a deterministic order so
// repeated discovery runs pick the same representative name.
func localizedNames(p pms.Product) []string {
	langs := make([]string, 0, len(p.Names))
	for lang := range p.Names {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	names := make([]string, 0, len(langs))
	for _, lang := range langs {
		if p.Names[lang] != "" {
			names = append(names, p.Names[lang])
		}
	}
	return names
}
