// Package scrape holds the per-site adapter contract, the shared
// extraction helpers, and the sequential run loop that drives them.
package scrape

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"zimjobs/internal/classify"
	"zimjobs/internal/expiry"
	"zimjobs/internal/models"
	"zimjobs/internal/network"
	"zimjobs/internal/textnorm"
)

// Adapter is the contract every job board implements.
type Adapter interface {
	Name() string

	// FetchPage retrieves one results page, extracts its listings, and
	// applies the currency filter. The parsed document is returned so
	// the runner can detect pagination from page 1; it is nil on
	// failure.
	FetchPage(ctx context.Context, page int) ([]models.Listing, *goquery.Document, error)

	// TotalPages estimates the page count from the first page's
	// pagination markup, already clamped to the site's safety cap.
	// Returns 1 when no pagination evidence is found.
	TotalPages(doc *goquery.Document) int

	// ResolveEmail fetches a job's detail page and harvests an
	// application email, or returns the site's placeholder.
	ResolveEmail(ctx context.Context, jobURL string) string
}

// Deps carries the collaborators shared by all adapters.
type Deps struct {
	Client     *network.Client
	Logger     zerolog.Logger
	Classifier *classify.Classifier
	Policy     expiry.Policy
	Now        func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// current applies the currency filter to a listing's expiry text.
func (d Deps) current(closing string) bool {
	return expiry.IsCurrent(closing, d.now(), d.Policy)
}

// finish normalizes a freshly extracted listing: ASCII-cleans every
// field, substitutes sentinels, classifies it, and assigns its ID.
func (d Deps) finish(l models.Listing, prefix string, page, index int) models.Listing {
	l.Title = models.OrNA(textnorm.Clean(l.Title))
	l.Company = models.OrNA(textnorm.Clean(l.Company))
	l.Location = models.OrNA(textnorm.Clean(l.Location))
	l.Description = models.OrNA(textnorm.Clean(l.Description))
	l.ClosingDate = models.OrNA(textnorm.Clean(l.ClosingDate))
	l.ApplyEmail = models.OrNA(l.ApplyEmail)
	l.Category = d.Classifier.Classify(l.Title, l.Description, l.Company)
	l.ID = models.ListingID(prefix, page, index, d.now())
	return l
}
