package scrape

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"zimjobs/internal/models"
)

// maxPagesHard bounds any site regardless of what its pagination
// markup claims.
const maxPagesHard = 50

type Options struct {
	// TestMode restricts every adapter to its first results page.
	TestMode bool
	// SiteDelay is the courtesy pause between successive boards.
	SiteDelay time.Duration
}

// Runner drives the configured adapters strictly sequentially. A
// failing adapter contributes zero listings; the rest still run.
type Runner struct {
	Adapters []Adapter
	Logger   zerolog.Logger
	Opts     Options
}

// Run scrapes every adapter and returns the aggregated listings plus
// per-site counts (zero entries included for failed sites).
func (r *Runner) Run(ctx context.Context) ([]models.Listing, map[string]int) {
	var all []models.Listing
	stats := make(map[string]int, len(r.Adapters))

	for i, adapter := range r.Adapters {
		if i > 0 && r.Opts.SiteDelay > 0 {
			select {
			case <-ctx.Done():
				stats[adapter.Name()] = 0
				continue
			case <-time.After(r.Opts.SiteDelay):
			}
		}

		listings := r.runAdapter(ctx, adapter)
		stats[adapter.Name()] = len(listings)
		all = append(all, listings...)
	}

	return all, stats
}

func (r *Runner) runAdapter(ctx context.Context, adapter Adapter) []models.Listing {
	site := adapter.Name()
	r.Logger.Info().Str("site", site).Msg("scraping site")

	all, doc, err := adapter.FetchPage(ctx, 1)
	if err != nil {
		r.Logger.Error().Err(err).Str("site", site).Msg("failed to scrape first page")
		return nil
	}

	total := 1
	if !r.Opts.TestMode && doc != nil {
		total = adapter.TotalPages(doc)
	}
	if total > maxPagesHard {
		total = maxPagesHard
	}

	for page := 2; page <= total; page++ {
		if ctx.Err() != nil {
			break
		}
		listings, _, err := adapter.FetchPage(ctx, page)
		if err != nil {
			r.Logger.Warn().Err(err).Str("site", site).Int("page", page).Msg("page fetch failed")
			continue
		}
		all = append(all, listings...)
	}

	r.Logger.Info().Str("site", site).Int("jobs", len(all)).Int("pages", total).Msg("site done")
	return all
}
