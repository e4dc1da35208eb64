package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"zimjobs/internal/models"
)

const (
	jobsZimbabweBase        = "https://jobszimbabwe.co.zw/"
	jobsZimbabwePrefix      = "JZ"
	jobsZimbabwePageCap     = 15
	jobsZimbabwePlaceholder = "Apply on Jobs Zimbabwe"
)

// JobsZimbabwe scrapes a WP Job Manager board. The board shows posted
// dates rather than expiry dates; the grace window in the expiry
// interpreter covers that.
type JobsZimbabwe struct {
	deps Deps
}

func NewJobsZimbabwe(deps Deps) *JobsZimbabwe {
	return &JobsZimbabwe{deps: deps}
}

func (j *JobsZimbabwe) Name() string {
	return SiteJobsZimbabwe
}

func (j *JobsZimbabwe) FetchPage(ctx context.Context, page int) ([]models.Listing, *goquery.Document, error) {
	target := jobsZimbabweBase
	if page > 1 {
		target = fmt.Sprintf("%spage/%d/", jobsZimbabweBase, page)
	}

	doc, err := fetchDocument(ctx, j.deps.Client, target, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("jobszimbabwe page %d: %w", page, err)
	}
	return j.extract(doc, page), doc, nil
}

func (j *JobsZimbabwe) extract(doc *goquery.Document, page int) []models.Listing {
	var listings []models.Listing
	index := 0
	for _, raw := range parseJobsZimbabweListings(doc) {
		if !j.deps.current(raw.ClosingDate) {
			j.deps.Logger.Debug().Str("site", j.Name()).Str("title", raw.Title).
				Str("expiry", raw.ClosingDate).Msg("skipping expired job")
			continue
		}
		raw.ApplyEmail = jobsZimbabwePlaceholder
		index++
		listings = append(listings, j.deps.finish(raw, jobsZimbabwePrefix, page, index))
	}
	return listings
}

func parseJobsZimbabweListings(doc *goquery.Document) []models.Listing {
	var listings []models.Listing

	doc.Find("ul.job_listings li.job_listing").Each(func(_ int, card *goquery.Selection) {
		closing := strings.TrimSpace(card.Find("time").First().AttrOr("datetime", ""))
		if closing == "" {
			closing = strings.TrimSpace(card.Find("time").First().Text())
		}
		if closing != "" && !strings.Contains(strings.ToLower(closing), "posted") {
			closing = "Posted " + closing
		}

		location := strings.TrimSpace(card.Find("div.location").First().Text())
		if location == "" {
			location = "Zimbabwe"
		}

		listings = append(listings, models.Listing{
			Title:       strings.TrimSpace(card.Find("h3").First().Text()),
			Company:     strings.TrimSpace(card.Find("div.company strong").First().Text()),
			Location:    location,
			Description: strings.TrimSpace(card.Find("div.job_summary, p.job-excerpt").First().Text()),
			ClosingDate: closing,
			SourceSite:  SiteJobsZimbabwe,
			URL:         strings.TrimSpace(card.Find("a").First().AttrOr("href", "")),
		})
	})

	return listings
}

func (j *JobsZimbabwe) TotalPages(doc *goquery.Document) int {
	pagination := doc.Find("nav.job-manager-pagination, ul.page-numbers, nav.pagination").First()
	if pagination.Length() == 0 {
		return 1
	}
	return capPages(pagesFromLinks(pagination), jobsZimbabwePageCap)
}

func (j *JobsZimbabwe) ResolveEmail(ctx context.Context, jobURL string) string {
	// applications go through the board's own form
	return jobsZimbabwePlaceholder
}
