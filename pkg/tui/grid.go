package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ryansoe/eventory/pkg/calendar"
)

// gridDay describes metadata used when rendering the calendar grid.
type gridDay struct {
	Day        int
	HasRecords bool
	IsToday    bool
	IsSelected bool
}

// gridOptions controls the styling of the rendered grid.
type gridOptions struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	RecordStyle   lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// renderGrid produces a multi-line month grid string.
func renderGrid(month calendar.Month, days []gridDay, opts gridOptions) string {
	daysInMonth := month.Days()

	meta := make(map[int]gridDay, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			meta[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		header := opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa")
		lines = append(lines, header)
	}

	weekdayOffset := int(month.StartWeekday()) // Sunday == 0
	rows := ((weekdayOffset + daysInMonth) + 6) / 7
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIndex := row*7 + col
			day := cellIndex - weekdayOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderGridDay(meta[day], day, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}

func renderGridDay(info gridDay, day int, opts gridOptions) string {
	glyph := dayGlyph(day)

	style := opts.EmptyStyle
	if info.HasRecords {
		style = opts.RecordStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(glyph)
}

func dayGlyph(day int) string {
	if day < 1 || day >= len(whiteCircledDigits) {
		return "  "
	}
	return whiteCircledDigits[day]
}

var whiteCircledDigits = []string{
	"⓪",
	"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩",
	"⑪", "⑫", "⑬", "⑭", "⑮", "⑯", "⑰", "⑱", "⑲", "⑳",
	"㉑", "㉒", "㉓", "㉔", "㉕", "㉖", "㉗", "㉘", "㉙", "㉚",
	"㉛", "㉜", "㉝", "㉞", "㉟",
	"㊱", "㊲", "㊳", "㊴", "㊵", "㊶", "㊷", "㊸", "㊹", "㊺", "㊻", "㊼", "㊽", "㊾", "㊿",
}
