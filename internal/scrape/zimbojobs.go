package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"zimjobs/internal/models"
)

const (
	zimboJobsBase        = "https://zimbojobs.com/jobs"
	zimboJobsPrefix      = "ZB"
	zimboJobsPageCap     = 15
	zimboJobsPlaceholder = "Apply on ZimboJobs"
)

type ZimboJobs struct {
	deps Deps
}

func NewZimboJobs(deps Deps) *ZimboJobs {
	return &ZimboJobs{deps: deps}
}

func (z *ZimboJobs) Name() string {
	return SiteZimboJobs
}

func (z *ZimboJobs) FetchPage(ctx context.Context, page int) ([]models.Listing, *goquery.Document, error) {
	doc, err := fetchDocument(ctx, z.deps.Client, pageURL(zimboJobsBase, page), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("zimbojobs page %d: %w", page, err)
	}
	return z.extract(doc, page), doc, nil
}

func (z *ZimboJobs) extract(doc *goquery.Document, page int) []models.Listing {
	var listings []models.Listing
	index := 0
	for _, raw := range parseZimboJobsListings(doc) {
		if !z.deps.current(raw.ClosingDate) {
			z.deps.Logger.Debug().Str("site", z.Name()).Str("title", raw.Title).
				Str("expiry", raw.ClosingDate).Msg("skipping expired job")
			continue
		}
		raw.ApplyEmail = zimboJobsPlaceholder
		index++
		listings = append(listings, z.deps.finish(raw, zimboJobsPrefix, page, index))
	}
	return listings
}

func parseZimboJobsListings(doc *goquery.Document) []models.Listing {
	var listings []models.Listing

	doc.Find("div.job-card").Each(func(_ int, card *goquery.Selection) {
		location := strings.TrimSpace(card.Find("span.job-card-location").First().Text())
		if location == "" {
			location = "Zimbabwe"
		}

		listings = append(listings, models.Listing{
			Title:       strings.TrimSpace(card.Find("a.job-card-title, h3.job-card-title").First().Text()),
			Company:     strings.TrimSpace(card.Find("span.job-card-company").First().Text()),
			Location:    location,
			Description: strings.TrimSpace(card.Find("p.job-card-excerpt").First().Text()),
			ClosingDate: strings.TrimSpace(card.Find("span.job-card-deadline").First().Text()),
			SourceSite:  SiteZimboJobs,
			URL:         absoluteURL("https://zimbojobs.com", card.Find("a").First().AttrOr("href", "")),
		})
	})

	return listings
}

// TotalPages relies on the board's "Page X of Y" footer copy since its
// pagination links are rendered client-side.
func (z *ZimboJobs) TotalPages(doc *goquery.Document) int {
	return capPages(pagesFromText(doc), zimboJobsPageCap)
}

func (z *ZimboJobs) ResolveEmail(ctx context.Context, jobURL string) string {
	return zimboJobsPlaceholder
}
