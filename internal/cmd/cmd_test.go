package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"zimjobs/internal/ui"
)

func testContext() (*Context, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	ctx := &Context{
		Out:     out,
		Err:     errOut,
		UI:      ui.New(out, errOut, ui.ColorNever, true),
		Version: "test",
	}
	return ctx, out, errOut
}

func TestVersionCmd(t *testing.T) {
	ctx, out, _ := testContext()
	if err := (&VersionCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if out.String() != "zimjobs test\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestSitesCmd(t *testing.T) {
	ctx, out, _ := testContext()
	if err := (&SitesCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 sites, got %d: %v", len(lines), lines)
	}
	if lines[0] != "vacancymail" {
		t.Fatalf("unexpected first site: %q", lines[0])
	}
}

func TestSitesCmdJSON(t *testing.T) {
	ctx, out, _ := testContext()
	ctx.JSONOutput = true
	if err := (&SitesCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	var sites []string
	if err := json.Unmarshal(out.Bytes(), &sites); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(sites) != 5 {
		t.Fatalf("expected 5 sites, got %v", sites)
	}
}

func TestCategoriesCmd(t *testing.T) {
	ctx, out, _ := testContext()
	if err := (&CategoriesCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// 15 taxonomy categories plus Other
	if len(lines) != 16 {
		t.Fatalf("expected 16 categories, got %d", len(lines))
	}
	if lines[0] != "Finance & Banking" {
		t.Fatalf("unexpected first category: %q", lines[0])
	}
	if lines[15] != "Other" {
		t.Fatalf("expected Other last, got %q", lines[15])
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
