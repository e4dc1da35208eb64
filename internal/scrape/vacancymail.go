package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"zimjobs/internal/models"
)

const (
	vacancyMailBase        = "https://vacancymail.co.zw/jobs/?ordering=later"
	vacancyMailPrefix      = "VM"
	vacancyMailPageCap     = 50
	vacancyMailPlaceholder = "Apply on VacancyMail"
)

// VacancyMail is the only board that exposes application emails on its
// detail pages, so it does a second round-trip per listing.
type VacancyMail struct {
	deps Deps
}

func NewVacancyMail(deps Deps) *VacancyMail {
	return &VacancyMail{deps: deps}
}

func (v *VacancyMail) Name() string {
	return SiteVacancyMail
}

func (v *VacancyMail) FetchPage(ctx context.Context, page int) ([]models.Listing, *goquery.Document, error) {
	doc, err := fetchDocument(ctx, v.deps.Client, pageURL(vacancyMailBase, page), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("vacancymail page %d: %w", page, err)
	}
	return v.extract(ctx, doc, page), doc, nil
}

func (v *VacancyMail) extract(ctx context.Context, doc *goquery.Document, page int) []models.Listing {
	var listings []models.Listing
	index := 0
	for _, raw := range parseVacancyMailListings(doc) {
		if !v.deps.current(raw.ClosingDate) {
			v.deps.Logger.Debug().Str("site", v.Name()).Str("title", raw.Title).
				Str("expiry", raw.ClosingDate).Msg("skipping expired job")
			continue
		}

		raw.ApplyEmail = vacancyMailPlaceholder
		if raw.URL != "" {
			raw.ApplyEmail = v.ResolveEmail(ctx, raw.URL)
		}

		index++
		listings = append(listings, v.deps.finish(raw, vacancyMailPrefix, page, index))
	}
	return listings
}

// parseVacancyMailListings extracts the raw fields of every job card
// on a results page, currency filtering not yet applied.
func parseVacancyMailListings(doc *goquery.Document) []models.Listing {
	var listings []models.Listing

	doc.Find("a.job-listing").Each(func(_ int, card *goquery.Selection) {
		listing := models.Listing{
			Title:       strings.TrimSpace(card.Find("h3.job-listing-title").First().Text()),
			Company:     strings.TrimSpace(card.Find("h4.job-listing-company").First().Text()),
			Description: strings.TrimSpace(card.Find("p.job-listing-text").First().Text()),
			SourceSite:  SiteVacancyMail,
			URL:         absoluteURL("https://vacancymail.co.zw", card.AttrOr("href", "")),
		}

		footer := card.Find("div.job-listing-footer")
		listing.Location = strings.TrimSpace(footer.Find("i.icon-material-outline-location-on").Closest("li").Text())
		listing.ClosingDate = strings.TrimSpace(footer.Find("i.icon-material-outline-access-time").Closest("li").Text())
		if listing.Location == "" {
			listing.Location = "Zimbabwe"
		}

		listings = append(listings, listing)
	})

	return listings
}

func (v *VacancyMail) TotalPages(doc *goquery.Document) int {
	pagination := doc.Find("ul.pagination, div.pagination, nav.pagination").First()
	if pagination.Length() == 0 {
		return 1
	}
	return capPages(pagesFromLinks(pagination), vacancyMailPageCap)
}

func (v *VacancyMail) ResolveEmail(ctx context.Context, jobURL string) string {
	doc, err := fetchDocument(ctx, v.deps.Client, jobURL, nil)
	if err != nil {
		v.deps.Logger.Warn().Err(err).Str("url", jobURL).Msg("email lookup failed")
		return vacancyMailPlaceholder
	}

	if email := extractEmail(doc.Text()); email != "" {
		return email
	}
	return vacancyMailPlaceholder
}

// pageURL appends the page parameter, respecting URLs that already
// carry a query string.
func pageURL(base string, page int) string {
	if page <= 1 {
		return base
	}
	separator := "?"
	if strings.Contains(base, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%spage=%d", base, separator, page)
}
