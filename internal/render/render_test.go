package render

import (
	"strings"
	"testing"
	"time"

	"postpace/internal/model"
)

func TestTimelineLineFormat(t *testing.T) {
	row := model.TimelineRow{Date: time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC), Count: 3}
	if got := TimelineLine(row, false); got != "2024-12-12  3" {
		t.Fatalf("expected %q, got %q", "2024-12-12  3", got)
	}
}

func TestTimelineGapDimmedOnlyWithColor(t *testing.T) {
	gap := model.TimelineRow{Date: time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC), Count: 0}
	if got := TimelineLine(gap, true); !strings.Contains(got, ansiDim) || !strings.Contains(got, "2024-12-14  0") {
		t.Fatalf("expected dimmed gap line, got %q", got)
	}
	if got := TimelineLine(gap, false); strings.Contains(got, "\x1b[") {
		t.Fatalf("expected plain line, got %q", got)
	}
	hit := model.TimelineRow{Date: gap.Date, Count: 2}
	if got := TimelineLine(hit, true); strings.Contains(got, ansiDim) {
		t.Fatalf("non-gap line should not be dimmed: %q", got)
	}
}

func TestStatusLineFormat(t *testing.T) {
	s := model.StatusSummary{Total: 5, Days: 4, Delta: 1}
	if got := StatusLine(s, false); got != "Total: 5, Days: 4, Delta: 1" {
		t.Fatalf("unexpected status line: %q", got)
	}
}

func TestStatusLineDeltaColor(t *testing.T) {
	ahead := model.StatusSummary{Total: 5, Days: 4, Delta: 1}
	if got := StatusLine(ahead, true); !strings.Contains(got, ansiGreen) {
		t.Fatalf("expected green delta, got %q", got)
	}
	behind := model.StatusSummary{Total: 1, Days: 4, Delta: -3}
	if got := StatusLine(behind, true); !strings.Contains(got, ansiRed) {
		t.Fatalf("expected red delta, got %q", got)
	}
}

func TestShouldColorRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ShouldColor(nil, "always") {
		t.Fatal("NO_COLOR must win over mode")
	}
}

func TestShouldColorModes(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if !ShouldColor(nil, "always") {
		t.Fatal("expected color for always")
	}
	if ShouldColor(nil, "never") {
		t.Fatal("expected no color for never")
	}
	// auto with a non-file writer falls back to no color
	if ShouldColor(nil, "auto") {
		t.Fatal("expected no color for auto without a TTY")
	}
}
