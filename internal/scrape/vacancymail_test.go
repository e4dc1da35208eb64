package scrape

import (
	"context"
	"testing"

	"zimjobs/internal/expiry"
)

const vacancyMailFixture = `
<div class="listings">
  <a class="job-listing">
    <h3 class="job-listing-title">Senior Accountant</h3>
    <h4 class="job-listing-company">ABC Bank</h4>
    <p class="job-listing-text">Prepare financial statements and manage audits.</p>
    <div class="job-listing-footer">
      <ul>
        <li><i class="icon-material-outline-location-on"></i> Harare</li>
        <li><i class="icon-material-outline-access-time"></i> Expires 24 Aug 2025</li>
      </ul>
    </div>
  </a>
  <a class="job-listing">
    <h3 class="job-listing-title">Stores Clerk</h3>
    <h4 class="job-listing-company">Retail Co</h4>
    <p class="job-listing-text">Stock control and record keeping.</p>
    <div class="job-listing-footer">
      <ul>
        <li><i class="icon-material-outline-location-on"></i> Bulawayo</li>
        <li><i class="icon-material-outline-access-time"></i> Expires 19 Aug 2025</li>
      </ul>
    </div>
  </a>
</div>`

func TestParseVacancyMailListings(t *testing.T) {
	doc := mustDoc(t, vacancyMailFixture)
	listings := parseVacancyMailListings(doc)
	if len(listings) != 2 {
		t.Fatalf("expected 2 raw listings, got %d", len(listings))
	}

	first := listings[0]
	if first.Title != "Senior Accountant" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if first.Company != "ABC Bank" {
		t.Fatalf("unexpected company: %q", first.Company)
	}
	if first.Location != "Harare" {
		t.Fatalf("unexpected location: %q", first.Location)
	}
	if first.ClosingDate != "Expires 24 Aug 2025" {
		t.Fatalf("unexpected closing date: %q", first.ClosingDate)
	}
}

// One current listing and one expired listing on the same page: under
// fail-closed only the current one survives extraction.
func TestVacancyMailExtractFiltersExpired(t *testing.T) {
	v := NewVacancyMail(testDeps())
	doc := mustDoc(t, vacancyMailFixture)

	listings := v.extract(context.Background(), doc, 1)
	if len(listings) != 1 {
		t.Fatalf("expected 1 current listing, got %d", len(listings))
	}

	got := listings[0]
	if got.Title != "Senior Accountant" {
		t.Fatalf("kept the wrong listing: %q", got.Title)
	}
	if got.Category != "Finance & Banking" {
		t.Fatalf("unexpected category: %q", got.Category)
	}
	if got.ID != "VM_001_001_20250820" {
		t.Fatalf("unexpected id: %q", got.ID)
	}
	if got.ApplyEmail != vacancyMailPlaceholder {
		t.Fatalf("expected placeholder email without a detail URL, got %q", got.ApplyEmail)
	}
}

func TestVacancyMailExtractFailOpenKeepsUnparseable(t *testing.T) {
	html := `
<a class="job-listing">
  <h3 class="job-listing-title">General Hand</h3>
  <h4 class="job-listing-company">Farm Co</h4>
  <p class="job-listing-text">General duties.</p>
</a>`

	closed := NewVacancyMail(testDeps())
	if got := closed.extract(context.Background(), mustDoc(t, html), 1); len(got) != 0 {
		t.Fatalf("fail-closed should drop missing expiry, got %d listings", len(got))
	}

	deps := testDeps()
	deps.Policy = expiry.FailOpen
	open := NewVacancyMail(deps)
	if got := open.extract(context.Background(), mustDoc(t, html), 1); len(got) != 1 {
		t.Fatalf("fail-open should keep missing expiry, got %d listings", len(got))
	}
}

func TestVacancyMailTotalPages(t *testing.T) {
	doc := mustDoc(t, `
<ul class="pagination">
  <li><a href="?page=2">2</a></li>
  <li><a href="?page=8">Last</a></li>
</ul>`)

	v := NewVacancyMail(testDeps())
	if got := v.TotalPages(doc); got != 8 {
		t.Fatalf("expected 8 pages, got %d", got)
	}

	if got := v.TotalPages(mustDoc(t, `<div>no pagination</div>`)); got != 1 {
		t.Fatalf("expected default of 1, got %d", got)
	}
}
