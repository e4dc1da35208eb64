package cmd

import (
	"encoding/json"
	"fmt"

	"zimjobs/internal/scrape"
)

type SitesCmd struct{}

func (s *SitesCmd) Run(ctx *Context) error {
	sites := []string{
		scrape.SiteVacancyMail,
		scrape.SiteJobsZimbabwe,
		scrape.SiteZimboJobs,
		scrape.SiteIHarareJobs,
		scrape.SiteMyJobsZim,
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(sites)
	}

	for _, site := range sites {
		if _, err := fmt.Fprintln(ctx.Out, site); err != nil {
			return err
		}
	}
	return nil
}
