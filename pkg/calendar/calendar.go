// Package calendar buckets deadlines into a month grid.
package calendar

import (
	"fmt"
	"time"

	"github.com/ryansoe/eventory/pkg/deadline"
)

// Month identifies a calendar month without a day component.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth accepts "2006-01" or "January 2006".
func ParseMonth(s string) (Month, error) {
	for _, layout := range []string{"2006-01", "January 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthOf(t), nil
		}
	}
	return Month{}, fmt.Errorf("calendar: cannot parse month %q", s)
}

// Next steps forward one calendar month, rolling the year over from December.
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Prev steps back one calendar month, rolling the year over from January.
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// First is midnight UTC on the first of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days is the number of days in the month, leap years included.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartWeekday is the weekday the month opens on.
func (m Month) StartWeekday() time.Weekday {
	return m.First().Weekday()
}

// Contains reports whether the canonical date falls inside the month.
func (m Month) Contains(d deadline.CanonicalDate) bool {
	return d.Year == m.Year && d.Month == m.Month
}

func (m Month) String() string {
	return m.First().Format("January 2006")
}

// DayBucket is one day of the month grid and the deadlines due on it.
type DayBucket struct {
	Date    time.Time
	Records []deadline.Record
}

// BucketByDay produces one bucket per day of the month, first through last,
// in ascending order. A record lands on a day only when its normalized date
// matches that day exactly; records without a parseable date are left out of
// every bucket.
func BucketByDay(records []deadline.Record, m Month) []DayBucket {
	byDay := make(map[int][]deadline.Record)
	for _, r := range records {
		d, ok := r.Due()
		if !ok || !m.Contains(d) {
			continue
		}
		byDay[d.Day] = append(byDay[d.Day], r)
	}

	buckets := make([]DayBucket, 0, m.Days())
	for day := 1; day <= m.Days(); day++ {
		buckets = append(buckets, DayBucket{
			Date:    time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC),
			Records: byDay[day],
		})
	}
	return buckets
}

// Undated collects the records excluded from every bucket because their date
// text does not parse. The feed still shows them; the grid lists them under a
// trailing section instead of guessing a day.
func Undated(records []deadline.Record) []deadline.Record {
	var out []deadline.Record
	for _, r := range records {
		if _, ok := r.Due(); !ok {
			out = append(out, r)
		}
	}
	return out
}
