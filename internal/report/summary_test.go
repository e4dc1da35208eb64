package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"zimjobs/internal/models"
)

func TestBuild(t *testing.T) {
	listings := []models.Listing{
		{Location: "Harare", Category: "Finance & Banking", ClosingDate: "Expires 24 Aug 2025", ApplyEmail: "hr@abcbank.co.zw"},
		{Location: "Harare", Category: "Healthcare", ClosingDate: "Expires 24 Aug 2025", ApplyEmail: "Apply on Jobs Zimbabwe"},
		{Location: "Bulawayo", Category: "Finance & Banking", ClosingDate: "Expires 30 Aug 2025", ApplyEmail: "N/A"},
	}
	stats := map[string]int{"vacancymail": 2, "jobszimbabwe": 1, "zimbojobs": 0}
	order := []string{"vacancymail", "jobszimbabwe", "zimbojobs"}

	s := Build(listings, stats, order)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, []Count{
		{Key: "vacancymail", Count: 2},
		{Key: "jobszimbabwe", Count: 1},
		{Key: "zimbojobs", Count: 0},
	}, s.Sites)
	assert.Equal(t, []Count{{Key: "Harare", Count: 2}, {Key: "Bulawayo", Count: 1}}, s.Locations)
	assert.Equal(t, []Count{{Key: "Finance & Banking", Count: 2}, {Key: "Healthcare", Count: 1}}, s.Categories)

	// placeholders and sentinels are not harvested emails
	assert.Equal(t, 1, s.EmailFound)
	assert.InDelta(t, 33.3, s.EmailRate(), 0.1)
}

func TestTopCountsStableOrder(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1, "e": 1, "f": 1}
	got := topCounts(counts, 5)

	assert.Equal(t, []Count{
		{Key: "c", Count: 5},
		{Key: "a", Count: 2},
		{Key: "b", Count: 2},
		{Key: "d", Count: 1},
		{Key: "e", Count: 1},
	}, got)
}

func TestRender(t *testing.T) {
	s := Build([]models.Listing{
		{Location: "Harare", Category: "Other", ClosingDate: "N/A", ApplyEmail: "jobs@acme.co.zw"},
	}, map[string]int{"vacancymail": 1}, []string{"vacancymail"})

	var buf bytes.Buffer
	s.Render(&buf, time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC))

	out := buf.String()
	assert.Contains(t, out, "Scraped 1 current jobs from 1 sites")
	assert.Contains(t, out, "expiring on or after 2025-08-20")
	assert.Contains(t, out, "1/1 jobs (100.0% success rate)")
	assert.Contains(t, out, "vacancymail: 1")
}

func TestEmailRateEmpty(t *testing.T) {
	assert.Zero(t, Summary{}.EmailRate())
}
