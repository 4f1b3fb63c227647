// Package export writes static renditions of a seasonal chart: images via
// gonum/plot, an interactive HTML page via go-echarts and a spreadsheet of
// the drawn series via excelize.
package export

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/vdobler/seasonal"
)

// ErrUnknownFormat indicates an export format not in Formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported export formats.
var Formats = []string{"png", "svg", "pdf", "html", "xlsx"}

// Snapshot is what an export shows: one subplot plus the raw series
// under the geometry of a chart preset.
type Snapshot struct {
	Config  seasonal.Config
	Theme   seasonal.Theme
	Subplot int
	Months  []seasonal.MonthSeries

	// Raw is nil if the raw series could not be reconstructed.
	Raw seasonal.Series
}

// NewSnapshot extracts subplot and the raw series from ds. A missing
// subplot is an error; a raw series that cannot be reconstructed is
// logged and left out.
func NewSnapshot(ds *seasonal.Dataset, cfg seasonal.Config, subplot, rawSubplot int) (*Snapshot, error) {
	months, err := seasonal.ExtractSubplot(ds, subplot)
	if err != nil {
		return nil, err
	}
	s := &Snapshot{
		Config:  cfg,
		Theme:   seasonal.DefaultTheme,
		Subplot: subplot,
		Months:  months,
	}
	if s.Raw, err = seasonal.RawSeries(ds, rawSubplot, nil); err != nil {
		log.Printf("export: raw series left out: %v", err)
	}
	return s, nil
}

// FormatFromPath derives the export format from the extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "htm" {
		ext = "html"
	}
	for _, f := range Formats {
		if f == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Write renders s in format to w.
func Write(w io.Writer, format string, s *Snapshot) error {
	switch format {
	case "png", "svg", "pdf":
		return writeImage(w, format, s)
	case "html":
		return writeHTML(w, s)
	case "xlsx":
		return writeXLSX(w, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
