package scrape

import (
	"fmt"
	"strings"
)

const (
	SiteVacancyMail  = "vacancymail"
	SiteJobsZimbabwe = "jobszimbabwe"
	SiteZimboJobs    = "zimbojobs"
	SiteIHarareJobs  = "ihararejobs"
	SiteMyJobsZim    = "myjobszim"
)

// Registry returns all adapters in run order. Order matters twice: it
// is the sequence the runner visits sites in, and the order of the
// per-site sections in the summary.
func Registry(deps Deps) []Adapter {
	return []Adapter{
		NewVacancyMail(deps),
		NewJobsZimbabwe(deps),
		NewZimboJobs(deps),
		NewIHarareJobs(deps),
		NewMyJobsZim(deps),
	}
}

// Select filters the registry down to the requested comma-separated
// site names, in the order requested. "all" or an empty request keeps
// everything.
func Select(adapters []Adapter, sitesArg string) ([]Adapter, error) {
	var requested []string
	for _, site := range strings.Split(sitesArg, ",") {
		site = strings.ToLower(strings.TrimSpace(site))
		if site == "" {
			continue
		}
		requested = append(requested, strings.TrimPrefix(site, "www."))
	}

	if len(requested) == 0 || (len(requested) == 1 && requested[0] == "all") {
		return adapters, nil
	}

	byName := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}

	seen := map[string]bool{}
	var selected []Adapter
	for _, site := range requested {
		a, ok := byName[site]
		if !ok {
			return nil, fmt.Errorf("unknown site: %s", site)
		}
		if seen[site] {
			continue
		}
		seen[site] = true
		selected = append(selected, a)
	}
	return selected, nil
}
