// Package expiry interprets free-text expiry and posted dates and
// decides whether a listing is still current.
package expiry

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Policy names the treatment of listings whose expiry cannot be parsed.
type Policy string

const (
	// FailOpen keeps listings with missing or unparseable expiry dates.
	FailOpen Policy = "fail-open"
	// FailClosed drops listings with missing or unparseable expiry dates.
	FailClosed Policy = "fail-closed"
)

func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case FailOpen:
		return FailOpen, nil
	case FailClosed, Policy(""):
		return FailClosed, nil
	default:
		return "", fmt.Errorf("unknown expiry policy: %q", value)
	}
}

// postedGraceDays is the fixed window applied when a board only shows a
// posted date: effective expiry = posted + 30 days.
const postedGraceDays = 30

var datePatterns = []struct {
	re      *regexp.Regexp
	layouts []string
}{
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), []string{"2006-01-02"}},
	{regexp.MustCompile(`(?i)\b\d{1,2} [a-z]{3,9} \d{4}\b`), []string{"2 January 2006", "2 Jan 2006"}},
	{regexp.MustCompile(`(?i)\b[a-z]{3,9} \d{1,2}, \d{4}\b`), []string{"January 2, 2006", "Jan 2, 2006"}},
	{regexp.MustCompile(`(?i)\b[a-z]{3,9} \d{1,2} \d{4}\b`), []string{"January 2 2006", "Jan 2 2006"}},
	{regexp.MustCompile(`(?i)\b\d{1,2} [a-z]{3,9} \d{2}\b`), []string{"2 Jan 06", "2 January 06"}},
	{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), []string{"2/1/2006", "1/2/2006"}},
	{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2}\b`), []string{"2/1/06", "1/2/06"}},
}

// Parse extracts a calendar date from text like "Expires 24 Aug 2025"
// or "Posted on August 1, 2025". Posted dates are shifted forward by
// the grace window. The second return is false when no date is
// recognizable.
func Parse(text string) (time.Time, bool) {
	cleaned := strings.Join(strings.Fields(text), " ")
	if cleaned == "" || strings.EqualFold(cleaned, "N/A") {
		return time.Time{}, false
	}

	date, ok := findDate(cleaned)
	if !ok {
		return time.Time{}, false
	}

	if strings.Contains(strings.ToLower(cleaned), "posted") {
		return date.AddDate(0, 0, postedGraceDays), true
	}
	return date, true
}

func findDate(text string) (time.Time, bool) {
	for _, p := range datePatterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}
		for _, layout := range p.layouts {
			if ts, err := time.Parse(layout, match); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}

// IsCurrent reports whether a listing with the given expiry text is
// still open on the run date. Unparseable dates fall back to the
// configured policy.
func IsCurrent(text string, now time.Time, policy Policy) bool {
	date, ok := Parse(text)
	if !ok {
		return policy == FailOpen
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !date.Before(today)
}
