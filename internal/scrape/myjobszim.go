package scrape

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"zimjobs/internal/models"
)

const (
	myJobsZimBase        = "https://myjobszimbabwe.co.zw/jobs"
	myJobsZimPrefix      = "MJ"
	myJobsZimPageCap     = 15
	myJobsZimPlaceholder = "Apply on MyJobsZim"
)

// MyJobsZim is the second client-rendered board: JSON-LD first, and a
// plain job-card fallback for the static listing pages it still serves.
type MyJobsZim struct {
	deps Deps
}

func NewMyJobsZim(deps Deps) *MyJobsZim {
	return &MyJobsZim{deps: deps}
}

func (m *MyJobsZim) Name() string {
	return SiteMyJobsZim
}

func (m *MyJobsZim) FetchPage(ctx context.Context, page int) ([]models.Listing, *goquery.Document, error) {
	doc, err := fetchDocument(ctx, m.deps.Client, pageURL(myJobsZimBase, page), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("myjobszim page %d: %w", page, err)
	}
	return m.extract(doc, page), doc, nil
}

func (m *MyJobsZim) extract(doc *goquery.Document, page int) []models.Listing {
	raw := parseJSONLDListings(doc, SiteMyJobsZim)
	if len(raw) == 0 {
		raw = parseMyJobsZimCards(doc)
	}
	if len(raw) == 0 {
		m.deps.Logger.Warn().Str("site", m.Name()).Int("page", page).Msg("no listings extracted")
		return nil
	}

	var listings []models.Listing
	index := 0
	for _, l := range raw {
		if !m.deps.current(l.ClosingDate) {
			m.deps.Logger.Debug().Str("site", m.Name()).Str("title", l.Title).
				Str("expiry", l.ClosingDate).Msg("skipping expired job")
			continue
		}
		if l.Location == "" {
			l.Location = "Zimbabwe"
		}
		l.ApplyEmail = myJobsZimPlaceholder
		index++
		listings = append(listings, m.deps.finish(l, myJobsZimPrefix, page, index))
	}
	return listings
}

func parseMyJobsZimCards(doc *goquery.Document) []models.Listing {
	var listings []models.Listing

	doc.Find("article.job, div.job-item").Each(func(_ int, card *goquery.Selection) {
		title := card.Find("h2 a, h3 a").First()
		listings = append(listings, models.Listing{
			Title:       card.Find("h2, h3").First().Text(),
			Company:     card.Find(".job-company, .company-name").First().Text(),
			Location:    card.Find(".job-location").First().Text(),
			Description: card.Find(".job-description, .entry-summary").First().Text(),
			ClosingDate: card.Find(".job-deadline, .job-expiry").First().Text(),
			SourceSite:  SiteMyJobsZim,
			URL:         absoluteURL("https://myjobszimbabwe.co.zw", title.AttrOr("href", "")),
		})
	})

	return listings
}

func (m *MyJobsZim) TotalPages(doc *goquery.Document) int {
	pagination := doc.Find("nav.pagination, ul.pagination").First()
	if pagination.Length() == 0 {
		return capPages(pagesFromText(doc), myJobsZimPageCap)
	}
	return capPages(pagesFromLinks(pagination), myJobsZimPageCap)
}

func (m *MyJobsZim) ResolveEmail(ctx context.Context, jobURL string) string {
	return myJobsZimPlaceholder
}
