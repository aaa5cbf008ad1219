package deadline

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CanonicalDate is a date-only value derived from free-text date expressions.
// Time of day is never significant.
type CanonicalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Key formats the date as a zero-padded YYYY-MM-DD string, which doubles as a
// lexicographically sortable key.
func (d CanonicalDate) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CanonicalDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CanonicalDate) Equal(o CanonicalDate) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d CanonicalDate) Before(o CanonicalDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// SameDay reports whether the canonical date lands on the given calendar day.
func (d CanonicalDate) SameDay(then time.Time) bool {
	return d.Year == then.Year() && d.Month == then.Month() && d.Day == then.Day()
}

var ordinalPattern = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)\b`)

// Normalize converts a free-text due-date expression like "April 15th, 2025"
// into a CanonicalDate. Ordinal suffixes on the day number are stripped before
// parsing. The second return is false when the text does not describe a date;
// callers treat that as "no date", never as an error.
//
// Normalizing an already-canonical YYYY-MM-DD string yields the same date, so
// Normalize(Key(Normalize(s))) agrees with Normalize(s).
func Normalize(dateText string) (CanonicalDate, bool) {
	cleaned := strings.TrimSpace(ordinalPattern.ReplaceAllString(dateText, "$1"))
	if cleaned == "" {
		return CanonicalDate{}, false
	}
	t, err := dateparse.ParseIn(cleaned, time.UTC)
	if err != nil {
		return CanonicalDate{}, false
	}
	return CanonicalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, true
}
