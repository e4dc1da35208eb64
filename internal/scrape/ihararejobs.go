package scrape

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"zimjobs/internal/models"
)

const (
	iHarareBase        = "https://ihararejobs.com/"
	iHararePrefix      = "IH"
	iHararePlaceholder = "Apply on iHarare Jobs"
)

// IHarareJobs renders its listings client-side, so the adapter reads
// the JSON-LD JobPosting records the page embeds for search engines.
// When a page carries none, that is surfaced as a distinct outcome
// rather than papered over with sample data.
type IHarareJobs struct {
	deps Deps
}

func NewIHarareJobs(deps Deps) *IHarareJobs {
	return &IHarareJobs{deps: deps}
}

func (i *IHarareJobs) Name() string {
	return SiteIHarareJobs
}

func (i *IHarareJobs) FetchPage(ctx context.Context, page int) ([]models.Listing, *goquery.Document, error) {
	doc, err := fetchDocument(ctx, i.deps.Client, pageURL(iHarareBase, page), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("ihararejobs page %d: %w", page, err)
	}
	return i.extract(doc, page), doc, nil
}

func (i *IHarareJobs) extract(doc *goquery.Document, page int) []models.Listing {
	raw := parseJSONLDListings(doc, SiteIHarareJobs)
	if len(raw) == 0 {
		i.deps.Logger.Warn().Str("site", i.Name()).Int("page", page).Msg("no listings extracted")
		return nil
	}

	var listings []models.Listing
	index := 0
	for _, l := range raw {
		if !i.deps.current(l.ClosingDate) {
			i.deps.Logger.Debug().Str("site", i.Name()).Str("title", l.Title).
				Str("expiry", l.ClosingDate).Msg("skipping expired job")
			continue
		}
		if l.Location == "" {
			l.Location = "Zimbabwe"
		}
		l.ApplyEmail = iHararePlaceholder
		index++
		listings = append(listings, i.deps.finish(l, iHararePrefix, page, index))
	}
	return listings
}

// TotalPages is always 1: the board paginates client-side and leaves
// no pagination evidence in the served HTML.
func (i *IHarareJobs) TotalPages(doc *goquery.Document) int {
	return 1
}

func (i *IHarareJobs) ResolveEmail(ctx context.Context, jobURL string) string {
	return iHararePlaceholder
}
