package scrape

import (
	"testing"
)

const myJobsZimCardsFixture = `
<main>
  <article class="job">
    <h2><a href="/job/warehouse-supervisor">Warehouse Supervisor</a></h2>
    <span class="job-company">Distribution Co</span>
    <span class="job-location">Harare</span>
    <p class="job-description">Oversee receiving and dispatch.</p>
    <span class="job-deadline">Expires 28 Aug 2025</span>
  </article>
</main>`

func TestMyJobsZimCardFallback(t *testing.T) {
	m := NewMyJobsZim(testDeps())

	listings := m.extract(mustDoc(t, myJobsZimCardsFixture), 1)
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing from the card fallback, got %d", len(listings))
	}

	got := listings[0]
	if got.Title != "Warehouse Supervisor" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
	if got.URL != "https://myjobszimbabwe.co.zw/job/warehouse-supervisor" {
		t.Fatalf("unexpected url: %q", got.URL)
	}
	if got.ApplyEmail != myJobsZimPlaceholder {
		t.Fatalf("unexpected apply email: %q", got.ApplyEmail)
	}
}

// JSON-LD postings win over the card markup when both are present.
func TestMyJobsZimPrefersJSONLD(t *testing.T) {
	html := `
<script type="application/ld+json">
{"@type": "JobPosting", "title": "Structured Job", "hiringOrganization": {"name": "Structured Co"}, "validThrough": "2025-09-01"}
</script>` + myJobsZimCardsFixture

	m := NewMyJobsZim(testDeps())
	listings := m.extract(mustDoc(t, html), 1)
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].Title != "Structured Job" {
		t.Fatalf("expected the JSON-LD posting, got %q", listings[0].Title)
	}
}

func TestMyJobsZimExtractEmpty(t *testing.T) {
	m := NewMyJobsZim(testDeps())
	if got := m.extract(mustDoc(t, `<div class="spa-root"></div>`), 1); got != nil {
		t.Fatalf("expected nil for an empty page, got %d listings", len(got))
	}
}

func TestMyJobsZimTotalPages(t *testing.T) {
	m := NewMyJobsZim(testDeps())

	withLinks := mustDoc(t, `<nav class="pagination"><a href="?page=4">4</a></nav>`)
	if got := m.TotalPages(withLinks); got != 4 {
		t.Fatalf("expected 4 pages from links, got %d", got)
	}

	withText := mustDoc(t, `<footer>Page 1 of 9</footer>`)
	if got := m.TotalPages(withText); got != 9 {
		t.Fatalf("expected 9 pages from text, got %d", got)
	}
}
