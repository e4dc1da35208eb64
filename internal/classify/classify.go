// Package classify assigns job listings to a fixed category taxonomy
// using weighted keyword scoring over title, description, and company.
package classify

import (
	"strings"
	"unicode"
)

// Keyword weights. Title hits dominate; a keyword is counted once in
// its highest-priority location only.
const (
	primaryTitleWeight       = 10
	primaryDescriptionWeight = 8
	secondaryTitleWeight     = 3
	secondaryDescWeight      = 2
	secondaryCompanyWeight   = 1
	companyIndicatorWeight   = 5
	exclusionWeight          = -3
)

// Classifier is a pure, deterministic function of its three string
// inputs. It is safe for concurrent use after construction.
type Classifier struct {
	categories []Category

	// titleFallback enables the title-signal pass. It is only set for
	// the built-in taxonomy: the signals name built-in categories, so a
	// loaded taxonomy must not reach them.
	titleFallback bool
}

// New returns a classifier over the built-in taxonomy.
func New() *Classifier {
	return &Classifier{categories: defaultTaxonomy, titleFallback: true}
}

// Categories lists the taxonomy names in declaration (tie-break) order.
func (c *Classifier) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Classify returns exactly one category name, or Other when nothing
// scores above zero and no title signal matches.
func (c *Classifier) Classify(title, description, company string) string {
	title = strings.ToLower(title)
	description = strings.ToLower(description)
	company = strings.ToLower(company)
	combined := title + " " + description + " " + company

	best := ""
	bestScore := 0
	for _, cat := range c.categories {
		score := scoreCategory(cat, title, description, company, combined)
		// strict > keeps the earliest category on ties
		if score > bestScore {
			best = cat.Name
			bestScore = score
		}
	}

	if bestScore > 0 {
		return best
	}
	if c.titleFallback {
		return fallbackSignal(title, combined)
	}
	return Other
}

func scoreCategory(cat Category, title, description, company, combined string) int {
	score := 0

	for _, kw := range cat.Primary {
		switch {
		case strings.Contains(title, kw):
			score += primaryTitleWeight
		case strings.Contains(description, kw):
			score += primaryDescriptionWeight
		}
	}

	for _, kw := range cat.Secondary {
		switch {
		case strings.Contains(title, kw):
			score += secondaryTitleWeight
		case strings.Contains(description, kw):
			score += secondaryDescWeight
		case strings.Contains(company, kw):
			score += secondaryCompanyWeight
		}
	}

	for _, kw := range cat.CompanyIndicators {
		if strings.Contains(company, kw) {
			score += companyIndicatorWeight
		}
	}

	for _, kw := range cat.Exclusions {
		if strings.Contains(combined, kw) {
			score += exclusionWeight
		}
	}

	return score
}

func fallbackSignal(title, combined string) string {
	for _, sig := range titleSignals {
		if !strings.Contains(title, sig.word) {
			continue
		}
		if !sig.contextual {
			return sig.category
		}
		for _, ctx := range signalContexts {
			for _, kw := range ctx.keywords {
				if containsWord(combined, kw) {
					return ctx.category
				}
			}
		}
	}
	return Other
}

// containsWord matches on whole words so a signal word cannot satisfy
// its own context ("officer" must not count as "office").
func containsWord(text, word string) bool {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if field == word {
			return true
		}
	}
	return false
}
