package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NA is the sentinel rendered for any field that could not be extracted.
const NA = "N/A"

// Listing is one normalized job posting scraped from a board.
type Listing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ClosingDate string `json:"closingDate"`
	SourceSite  string `json:"sourceSite"`
	ApplyEmail  string `json:"applyEmail"`
	URL         string `json:"url,omitempty"`
}

// ListingID builds the positional run-scoped ID, e.g. VM_001_004_20250901.
// Unique within one run, not across runs on the same day; cross-run
// identity uses ContentHash.
func ListingID(prefix string, page int, index int, now time.Time) string {
	return fmt.Sprintf("%s_%03d_%03d_%s", prefix, page, index, now.Format("20060102"))
}

// ContentHash keys a listing by what it is rather than where it sat on
// the page: SHA-256 over lowercased title, company, and source site.
func (l Listing) ContentHash() string {
	key := strings.ToLower(l.Title) + "|" + strings.ToLower(l.Company) + "|" + strings.ToLower(l.SourceSite)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// OrNA substitutes the N/A sentinel for empty values.
func OrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return NA
	}
	return value
}
