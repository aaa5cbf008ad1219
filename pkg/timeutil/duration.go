package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"h":      time.Hour,
		"hr":     time.Hour,
		"hrs":    time.Hour,
		"hour":   time.Hour,
		"hours":  time.Hour,
		"d":      24 * time.Hour,
		"day":    24 * time.Hour,
		"days":   24 * time.Hour,
		"w":      7 * 24 * time.Hour,
		"wk":     7 * 24 * time.Hour,
		"wks":    7 * 24 * time.Hour,
		"week":   7 * 24 * time.Hour,
		"weeks":  7 * 24 * time.Hour,
		"mo":     30 * 24 * time.Hour,
		"month":  30 * 24 * time.Hour,
		"months": 30 * 24 * time.Hour,
	}
)

// ParseWindow parses a human-friendly duration string (for example "1w", "3d", or
// "1w2d") and returns the equivalent duration along with a canonical, compact
// representation. An empty input means no window.
func ParseWindow(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, "", nil
	}

	lower := strings.ToLower(trimmed)
	remaining := lower
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid duration value %q: %w", valueStr, err)
		}
		base, ok := unitMap[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported duration unit %q", unitStr)
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("duration must be greater than zero")
	}

	return total, FormatWindow(total), nil
}

// FormatWindow renders a duration using week/day/hour tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0h"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0h"
	}
	return strings.Join(parts, "")
}

// Until describes how far a day is from now, in whole days. It compares
// calendar days, so a deadline later today is "today" regardless of the hour.
func Until(now, due time.Time) string {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	days := int(b.Sub(a).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days > 1:
		return fmt.Sprintf("in %dd", days)
	case days == -1:
		return "1d ago"
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}
