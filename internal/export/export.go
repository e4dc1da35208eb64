package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"zimjobs/internal/models"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatTable, Format(""):
		return FormatTable, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", value)
	}
}

type WriteOptions struct {
	ColorEnabled bool
}

// WriteListings renders listings to w in the requested format.
func WriteListings(w io.Writer, listings []models.Listing, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, listings)
	case FormatCSV:
		return writeCSV(w, listings)
	default:
		return writeTable(w, listings, opts)
	}
}

func writeJSON(w io.Writer, listings []models.Listing) error {
	if listings == nil {
		listings = []models.Listing{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(listings)
}

// csvHeader is the fixed column order consumers of the CSV depend on.
func csvHeader() []string {
	return []string{
		"Job Title",
		"Company",
		"Location",
		"Category",
		"Expiry Date",
		"Description",
		"Source Site",
		"Apply Email",
	}
}

func csvRow(l models.Listing) []string {
	return []string{
		models.OrNA(l.Title),
		models.OrNA(l.Company),
		models.OrNA(l.Location),
		models.OrNA(l.Category),
		models.OrNA(l.ClosingDate),
		models.OrNA(l.Description),
		models.OrNA(l.SourceSite),
		models.OrNA(l.ApplyEmail),
	}
}

func writeCSV(w io.Writer, listings []models.Listing) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, l := range listings {
		if err := writer.Write(csvRow(l)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, listings []models.Listing, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"id", "title", "company", "location", "category", "expires"}, "\t"))
	output := termenv.NewOutput(w)
	for _, l := range listings {
		fmt.Fprintln(tw, strings.Join(tableRow(l, output, opts), "\t"))
	}
	return tw.Flush()
}

func tableRow(l models.Listing, output *termenv.Output, opts WriteOptions) []string {
	const categoryColor = "#87CEEB"

	category := models.OrNA(l.Category)
	if opts.ColorEnabled {
		category = output.String(category).Foreground(output.Color(categoryColor)).String()
	}
	return []string{
		l.ID,
		truncate(models.OrNA(l.Title), 48),
		truncate(models.OrNA(l.Company), 32),
		truncate(models.OrNA(l.Location), 24),
		category,
		models.OrNA(l.ClosingDate),
	}
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max-3] + "..."
}

const runFilePrefix = "scraped_data"

// SaveRun writes the run's listings to timestamped CSV and JSON files
// in dir, then refreshes the untimestamped convenience copies. A
// permission error on a convenience copy is downgraded to a warning;
// any other write failure is fatal to the save.
func SaveRun(dir string, listings []models.Listing, now time.Time, logger zerolog.Logger) (csvPath, jsonPath string, err error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", fmt.Errorf("create output dir: %w", err)
		}
	}

	stamp := now.Format("20060102_150405")
	csvPath = filepath.Join(dir, fmt.Sprintf("%s_%s.csv", runFilePrefix, stamp))
	jsonPath = filepath.Join(dir, fmt.Sprintf("%s_%s.json", runFilePrefix, stamp))

	if err := writeFile(csvPath, listings, FormatCSV); err != nil {
		return "", "", err
	}
	if err := writeFile(jsonPath, listings, FormatJSON); err != nil {
		return "", "", err
	}

	for _, latest := range []struct {
		path   string
		format Format
	}{
		{filepath.Join(dir, runFilePrefix+".csv"), FormatCSV},
		{filepath.Join(dir, runFilePrefix+".json"), FormatJSON},
	} {
		if err := writeFile(latest.path, listings, latest.format); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				logger.Warn().Str("path", latest.path).Msg("could not refresh latest copy")
				continue
			}
			return "", "", err
		}
	}

	return csvPath, jsonPath, nil
}

func writeFile(path string, listings []models.Listing, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := WriteListings(f, listings, format, WriteOptions{}); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
