package scrape

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"zimjobs/internal/models"
)

// parseJSONLDListings pulls JobPosting records out of embedded
// application/ld+json scripts. JS-rendered boards usually still ship
// these for search engines, which is what makes the dynamic sites
// scrapeable at all.
func parseJSONLDListings(doc *goquery.Document, site string) []models.Listing {
	var listings []models.Listing
	seen := map[string]struct{}{}

	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}

		data, err := decodeJSONLD(raw)
		if err != nil {
			return
		}

		for _, l := range listingsFromJSONLD(data, site) {
			key := strings.ToLower(l.Title + "|" + l.Company)
			if strings.Trim(key, "|") == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			listings = append(listings, l)
		}
	})

	return listings
}

func decodeJSONLD(raw string) (any, error) {
	raw = strings.TrimPrefix(raw, "<!--")
	raw = strings.TrimSuffix(raw, "-->")
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, " ", "")

	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return data, nil
}

func listingsFromJSONLD(data any, site string) []models.Listing {
	var listings []models.Listing

	switch value := data.(type) {
	case []any:
		for _, item := range value {
			listings = append(listings, listingsFromJSONLD(item, site)...)
		}
	case map[string]any:
		if typ := strings.ToLower(jsonString(value["@type"], value["type"])); typ == "jobposting" {
			return append(listings, listingFromPosting(value, site))
		}
		for _, key := range []string{"@graph", "mainEntity", "itemListElement"} {
			if nested, ok := value[key]; ok {
				listings = append(listings, listingsFromJSONLD(nested, site)...)
			}
		}
		if item, ok := value["item"]; ok {
			listings = append(listings, listingsFromJSONLD(item, site)...)
		}
	}

	return listings
}

func listingFromPosting(value map[string]any, site string) models.Listing {
	closing := jsonString(value["validThrough"])
	if closing == "" {
		// fall back to the posted date; the expiry interpreter adds
		// the grace window when it sees "posted"
		if posted := jsonString(value["datePosted"]); posted != "" {
			closing = "Posted " + posted
		}
	}

	return models.Listing{
		Title:       jsonString(value["title"], value["name"]),
		Company:     jsonString(nestedValue(value["hiringOrganization"], "name")),
		Location:    jsonLocation(value["jobLocation"]),
		Description: jsonString(value["description"]),
		ClosingDate: closing,
		SourceSite:  site,
		URL:         jsonString(value["url"], value["@id"]),
	}
}

func jsonLocation(value any) string {
	switch v := value.(type) {
	case []any:
		var parts []string
		for _, item := range v {
			if loc := jsonLocation(item); loc != "" {
				parts = append(parts, loc)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		if address, ok := v["address"].(map[string]any); ok {
			return joinAddress(address)
		}
		return joinAddress(v)
	case string:
		return v
	}
	return ""
}

func joinAddress(value map[string]any) string {
	var parts []string
	for _, key := range []string{"addressLocality", "addressRegion", "addressCountry"} {
		if part := jsonString(value[key]); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func jsonString(values ...any) string {
	for _, value := range values {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		case map[string]any:
			if name := jsonString(v["name"]); name != "" {
				return name
			}
		}
	}
	return ""
}

func nestedValue(value any, key string) any {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}
