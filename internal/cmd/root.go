package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Scrape     ScrapeCmd     `cmd:"" default:"1" help:"Scrape the configured job boards."`
	Sites      SitesCmd      `cmd:"" help:"List the supported job boards."`
	Categories CategoriesCmd `cmd:"" help:"List the job categories."`
	Config     ConfigCmd     `cmd:"" help:"Manage configuration."`
	Version    VersionCmd    `cmd:"" help:"Print version."`
}

func NewCLI() *CLI {
	return &CLI{}
}
