package cmd

import (
	"io"

	"github.com/rs/zerolog"

	"zimjobs/internal/config"
	"zimjobs/internal/ui"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	Version    string
	ColorMode  ui.ColorMode
}
