package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/ryansoe/eventory/pkg/calendar"
)

func TestDayGlyphBounds(t *testing.T) {
	if g := dayGlyph(0); g != "  " {
		t.Fatalf("day 0 should render blank, got %q", g)
	}
	if g := dayGlyph(1); g != "①" {
		t.Fatalf("day 1 glyph: got %q", g)
	}
	if g := dayGlyph(31); g != "㉛" {
		t.Fatalf("day 31 glyph: got %q", g)
	}
	if g := dayGlyph(99); g != "  " {
		t.Fatalf("out-of-range day should render blank, got %q", g)
	}
}

func TestRenderGridShape(t *testing.T) {
	// February 2025 opens on a Saturday and has 28 days: 6 leading blanks
	// plus 28 days is 5 rows.
	m := calendar.Month{Year: 2025, Month: time.February}

	out := renderGrid(m, nil, gridOptions{})

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[0], "①") {
		t.Fatalf("first row should end on day 1:\n%s", out)
	}
	if !strings.Contains(lines[4], "㉘") {
		t.Fatalf("last row should contain day 28:\n%s", out)
	}

	withHeader := renderGrid(m, nil, gridOptions{ShowHeader: true})
	if !strings.HasPrefix(withHeader, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("expected weekday header:\n%s", withHeader)
	}
}
