// Package report computes the end-of-run statistics shown after a
// scrape: totals, per-site counts, and the leading locations,
// categories, and expiry dates.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"zimjobs/internal/models"
)

// topN bounds the location/category/expiry breakdowns.
const topN = 5

type Count struct {
	Key   string
	Count int
}

type Summary struct {
	Total      int
	Sites      []Count
	Locations  []Count
	Categories []Count
	Expiries   []Count

	// EmailFound counts listings with a harvested address, as opposed
	// to an "Apply on ..." placeholder or the N/A sentinel.
	EmailFound int
}

// Build computes a summary over one run's aggregated listings.
// siteOrder fixes the per-site section to the run order and keeps
// zero-listing sites visible.
func Build(listings []models.Listing, siteStats map[string]int, siteOrder []string) Summary {
	s := Summary{Total: len(listings)}

	for _, site := range siteOrder {
		s.Sites = append(s.Sites, Count{Key: site, Count: siteStats[site]})
	}

	locations := map[string]int{}
	categories := map[string]int{}
	expiries := map[string]int{}
	for _, l := range listings {
		locations[l.Location]++
		categories[l.Category]++
		expiries[l.ClosingDate]++
		if strings.Contains(l.ApplyEmail, "@") {
			s.EmailFound++
		}
	}

	s.Locations = topCounts(locations, topN)
	s.Categories = topCounts(categories, topN)
	s.Expiries = topCounts(expiries, topN)
	return s
}

// topCounts ranks by count descending, breaking ties alphabetically so
// the report is stable across runs.
func topCounts(counts map[string]int, limit int) []Count {
	out := make([]Count, 0, len(counts))
	for key, count := range counts {
		out = append(out, Count{Key: key, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s Summary) EmailRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.EmailFound) / float64(s.Total) * 100
}

// Render writes the human-readable report.
func (s Summary) Render(w io.Writer, now time.Time) {
	fmt.Fprintf(w, "Scraped %d current jobs from %d sites\n", s.Total, len(s.Sites))
	fmt.Fprintf(w, "Jobs filtered to those expiring on or after %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(w, "Email extraction: %d/%d jobs (%.1f%% success rate)\n", s.EmailFound, s.Total, s.EmailRate())

	fmt.Fprintln(w, "\nJobs by source:")
	for _, c := range s.Sites {
		fmt.Fprintf(w, "  %s: %d\n", c.Key, c.Count)
	}

	sections := []struct {
		title  string
		counts []Count
	}{
		{"Jobs by location:", s.Locations},
		{"Jobs by category:", s.Categories},
		{"Jobs by expiry date:", s.Expiries},
	}
	for _, section := range sections {
		if len(section.counts) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", section.title)
		for _, c := range section.counts {
			fmt.Fprintf(w, "  %s: %d\n", c.Key, c.Count)
		}
	}
}
