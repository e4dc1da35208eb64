package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zimjobs/internal/config"
	"zimjobs/internal/expiry"
	"zimjobs/internal/export"
	"zimjobs/internal/history"
	"zimjobs/internal/models"
	"zimjobs/internal/network"
	"zimjobs/internal/report"
	"zimjobs/internal/scrape"
)

type ScrapeCmd struct {
	Test      bool    `help:"Scrape only the first results page of each site."`
	Sites     string  `help:"Comma-separated sites (default: all)." default:"all"`
	Policy    string  `help:"Treatment of unparseable expiry dates: fail-open, fail-closed."`
	Format    string  `help:"Stdout format: table, csv, json." enum:",table,csv,json" default:""`
	Output    string  `name:"output" short:"o" help:"Directory for the run's output files."`
	NoSave    bool    `help:"Skip writing output files; print to stdout only."`
	Proxies   string  `help:"Comma-separated proxy URLs." env:"ZIMJOBS_PROXIES"`
	Taxonomy  string  `help:"Path to a YAML taxonomy file overriding the built-in categories."`
	History   string  `help:"Path to the seen-jobs history database."`
	NewOnly   bool    `help:"Keep only listings unseen in previous runs."`
	Rps       float64 `help:"Maximum requests per second per host."`
	SiteDelay int     `help:"Seconds to pause between sites." default:"-1"`
}

func (s *ScrapeCmd) Run(ctx *Context) error {
	cfg := ctx.Config

	policy, err := expiry.ParsePolicy(firstNonEmpty(s.Policy, cfg.ExpiryPolicy))
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(firstNonEmpty(s.Format, cfg.DefaultFormat))
	if err != nil {
		return err
	}
	if ctx.JSONOutput {
		format = export.FormatJSON
	}

	classifier, err := resolveClassifier(firstNonEmpty(s.Taxonomy, cfg.TaxonomyPath))
	if err != nil {
		return err
	}

	proxies, err := config.LoadProxies(s.Proxies)
	if err != nil {
		return err
	}
	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return err
		}
	}

	rps := s.Rps
	if rps <= 0 {
		rps = cfg.RequestsPerSecond
	}
	client, err := network.NewClient(rotator, network.NewHostLimiter(rps, 1))
	if err != nil {
		return err
	}

	deps := scrape.Deps{
		Client:     client,
		Logger:     ctx.Logger,
		Classifier: classifier,
		Policy:     policy,
		Now:        time.Now,
	}

	selected, err := scrape.Select(scrape.Registry(deps), s.Sites)
	if err != nil {
		return err
	}

	siteDelay := s.SiteDelay
	if siteDelay < 0 {
		siteDelay = cfg.SiteDelaySeconds
	}

	runner := &scrape.Runner{
		Adapters: selected,
		Logger:   ctx.Logger,
		Opts: scrape.Options{
			TestMode:  s.Test,
			SiteDelay: time.Duration(siteDelay) * time.Second,
		},
	}

	runCtx := context.Background()
	now := time.Now()
	listings, stats := runner.Run(runCtx)

	if s.NewOnly {
		listings, err = filterSeen(runCtx, s.History, cfg, listings, now)
		if err != nil {
			return err
		}
	}

	if !s.NoSave {
		outputDir := firstNonEmpty(s.Output, cfg.OutputDir)
		csvPath, jsonPath, err := export.SaveRun(outputDir, listings, now, ctx.Logger)
		if err != nil {
			return err
		}
		ctx.UI.Successf("Data saved to %s and %s", csvPath, jsonPath)
	}

	opts := export.WriteOptions{ColorEnabled: ctx.UI.ColorEnabled}
	if err := export.WriteListings(ctx.Out, listings, format, opts); err != nil {
		return err
	}

	siteOrder := make([]string, 0, len(selected))
	for _, adapter := range selected {
		siteOrder = append(siteOrder, adapter.Name())
	}
	report.Build(listings, stats, siteOrder).Render(ctx.Err, now)

	return nil
}

// filterSeen records this run's listings in the history database and
// drops the ones earlier runs already produced.
func filterSeen(ctx context.Context, flagPath string, cfg config.Config, listings []models.Listing, now time.Time) ([]models.Listing, error) {
	path := firstNonEmpty(flagPath, cfg.HistoryPath)
	if path == "" {
		defaultPath, err := config.DefaultHistoryPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	store, err := history.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.FilterNew(ctx, listings, now)
}
