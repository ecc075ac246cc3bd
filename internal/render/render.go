// Package render turns the computed views into terminal lines. Emphasis is
// plain ANSI gated on NO_COLOR, the configured mode and TTY detection; the
// computation layers never touch presentation.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"postpace/internal/model"
)

const (
	ansiDim   = "\x1b[2m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// TimelineLine formats one row as "YYYY-MM-DD  <count>" (two spaces).
// Gap days are dimmed when color is on.
func TimelineLine(row model.TimelineRow, color bool) string {
	line := fmt.Sprintf("%s  %d", row.Date.Format("2006-01-02"), row.Count)
	if color && row.Gap() {
		return ansiDim + line + ansiReset
	}
	return line
}

// StatusLine formats the pace summary. The delta is colored by sign: green
// at or ahead of a post-per-day cadence, red behind it.
func StatusLine(s model.StatusSummary, color bool) string {
	if !color {
		return fmt.Sprintf("Total: %d, Days: %d, Delta: %d", s.Total, s.Days, s.Delta)
	}
	c := ansiGreen
	if s.Delta < 0 {
		c = ansiRed
	}
	return fmt.Sprintf("Total: %d, Days: %d, %sDelta: %d%s", s.Total, s.Days, c, s.Delta, ansiReset)
}

// ShouldColor honours NO_COLOR first, then the configured mode, then falls
// back to TTY detection for "auto".
func ShouldColor(w io.Writer, mode string) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	case "auto", "":
		if f, ok := w.(*os.File); ok {
			if fi, err := f.Stat(); err == nil {
				return (fi.Mode() & os.ModeCharDevice) != 0
			}
		}
		return false
	default:
		return false
	}
}
