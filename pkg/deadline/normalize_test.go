package deadline

import (
	"testing"
	"time"
)

func TestNormalizeOrdinals(t *testing.T) {
	tests := map[string]CanonicalDate{
		"April 15th, 2025":    {Year: 2025, Month: time.April, Day: 15},
		"May 2nd, 2025":       {Year: 2025, Month: time.May, Day: 2},
		"December 1st, 2023":  {Year: 2023, Month: time.December, Day: 1},
		"December 3rd, 2023":  {Year: 2023, Month: time.December, Day: 3},
		"December 21st, 2023": {Year: 2023, Month: time.December, Day: 21},
		"December 15, 2023":   {Year: 2023, Month: time.December, Day: 15},
		"2025-04-15":          {Year: 2025, Month: time.April, Day: 15},
	}
	for in, want := range tests {
		got, ok := Normalize(in)
		if !ok {
			t.Errorf("Normalize(%q) unexpectedly failed", in)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("Normalize(%q) = %s, want %s", in, got.Key(), want.Key())
		}
	}
}

func TestNormalizeUnparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date", "next time we meet"} {
		if got, ok := Normalize(in); ok {
			t.Errorf("Normalize(%q) = %s, expected unparseable", in, got.Key())
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"April 15th, 2025", "May 2nd, 2025", "2024-02-29"}
	for _, in := range inputs {
		first, ok := Normalize(in)
		if !ok {
			t.Fatalf("Normalize(%q) failed", in)
		}
		second, ok := Normalize(first.Key())
		if !ok {
			t.Fatalf("Normalize(%q) failed on canonical form", first.Key())
		}
		if !first.Equal(second) {
			t.Errorf("re-normalizing %q changed the date: %s -> %s", in, first.Key(), second.Key())
		}
	}
}

func TestCanonicalDateKey(t *testing.T) {
	d := CanonicalDate{Year: 2025, Month: time.May, Day: 2}
	if d.Key() != "2025-05-02" {
		t.Errorf("unexpected key: %s", d.Key())
	}
}

func TestRecordDueRecomputes(t *testing.T) {
	r := Record{DateText: "April 15th, 2025"}
	if d, ok := r.Due(); !ok || d.Key() != "2025-04-15" {
		t.Fatalf("unexpected due date: %v %v", d, ok)
	}
	r.DateText = "May 2nd, 2025"
	if d, ok := r.Due(); !ok || d.Key() != "2025-05-02" {
		t.Fatalf("due date not recomputed: %v %v", d, ok)
	}
	r.DateText = "tbd"
	if _, ok := r.Due(); ok {
		t.Fatalf("expected unparseable after date text change")
	}
}
