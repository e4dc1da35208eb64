package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv("ZIMJOBS_FORMAT", "json")
	t.Setenv("ZIMJOBS_RPS", "2.5")
	t.Setenv("ZIMJOBS_SITE_DELAY", "not-a-number")

	cfg := DefaultConfig()
	if cfg.DefaultFormat != "json" {
		t.Fatalf("unexpected format: %q", cfg.DefaultFormat)
	}
	if cfg.RequestsPerSecond != 2.5 {
		t.Fatalf("unexpected rps: %v", cfg.RequestsPerSecond)
	}
	// malformed env values fall back silently
	if cfg.SiteDelaySeconds != 2 {
		t.Fatalf("unexpected site delay: %d", cfg.SiteDelaySeconds)
	}
}

func TestLoadFromAllowsJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  // comments and trailing commas are fine
  default_format: "csv",
  expiry_policy: "fail-open",
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path, DefaultConfig())
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.DefaultFormat != "csv" {
		t.Fatalf("unexpected format: %q", cfg.DefaultFormat)
	}
	if cfg.ExpiryPolicy != "fail-open" {
		t.Fatalf("unexpected policy: %q", cfg.ExpiryPolicy)
	}
	// untouched fields keep their defaults
	if cfg.RequestsPerSecond != 0.5 {
		t.Fatalf("unexpected rps: %v", cfg.RequestsPerSecond)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "absent.json"), DefaultConfig())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.DefaultFormat != "table" {
		t.Fatalf("unexpected format: %q", cfg.DefaultFormat)
	}
}

func TestLoadProxiesFlagWins(t *testing.T) {
	proxies, err := LoadProxies(" http://p1:8080 , http://p2:8080 ")
	if err != nil {
		t.Fatal(err)
	}
	if len(proxies) != 2 || proxies[0] != "http://p1:8080" {
		t.Fatalf("unexpected proxies: %v", proxies)
	}
}
