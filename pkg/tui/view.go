package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ryansoe/eventory/pkg/calendar"
	"github.com/ryansoe/eventory/pkg/category"
	"github.com/ryansoe/eventory/pkg/deadline"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	inactiveTabStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(lipgloss.Color("245"))
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	italicStyle = lipgloss.NewStyle().Italic(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	gridStyles = gridOptions{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		RecordStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		TodayStyle:    lipgloss.NewStyle().Bold(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		ShowHeader:    true,
	}
)

func categories() []category.Category {
	return category.All()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch {
	case m.mode == modeDetail:
		b.WriteString(m.detailView())
	case m.tab == tabCalendar:
		b.WriteString(m.calendarView())
	default:
		b.WriteString(m.feedView())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString(faintStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

func (m Model) tabsView() string {
	feed := inactiveTabStyle.Render("Feed")
	cal := inactiveTabStyle.Render("Calendar")
	if m.tab == tabFeed {
		feed = activeTabStyle.Render("Feed")
	} else {
		cal = activeTabStyle.Render("Calendar")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, feed, " ", cal)
}

func (m Model) feedView() string {
	var b strings.Builder

	if m.mode == modeSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	v := m.views()
	row := 0
	for _, c := range categories() {
		records := v.ByCategory[c]
		b.WriteString(headingStyle.Render(c.Heading()))
		b.WriteString("\n")
		if len(records) == 0 {
			b.WriteString(faintStyle.Render("  none"))
			b.WriteString("\n")
		}
		for _, r := range records {
			line := feedRow(r)
			if row == m.cursor && m.mode != modeSearch {
				b.WriteString(selectedRowStyle.Render("➜ " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
			row++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func feedRow(r deadline.Record) string {
	due := r.DateText
	if due == "" {
		due = "no date"
	}
	line := fmt.Sprintf("%s  %s", due, r.Title)
	if r.ChannelName != "" {
		line += faintStyle.Render("  #" + r.ChannelName)
	}
	return line
}

func (m Model) calendarView() string {
	var b strings.Builder

	if m.mode == modeSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	v := m.views()
	buckets := calendar.BucketByDay(v.Flat, m.month)
	today := time.Now()

	days := make([]gridDay, 0, len(buckets))
	for _, bucket := range buckets {
		days = append(days, gridDay{
			Day:        bucket.Date.Day(),
			HasRecords: len(bucket.Records) > 0,
			IsToday:    sameDay(bucket.Date, today),
			IsSelected: bucket.Date.Day() == m.day,
		})
	}

	b.WriteString(headingStyle.Render(m.month.String()))
	b.WriteString("\n\n")
	b.WriteString(renderGrid(m.month, days, gridStyles))
	b.WriteString("\n\n")

	selected := buckets[m.day-1]
	b.WriteString(headingStyle.Render(selected.Date.Format("January 2, 2006")))
	b.WriteString("\n")
	if len(selected.Records) == 0 {
		b.WriteString(faintStyle.Render("  none"))
		b.WriteString("\n")
	}
	for _, r := range selected.Records {
		b.WriteString("  " + feedRow(r) + "\n")
	}

	if undated := calendar.Undated(v.Flat); len(undated) > 0 {
		b.WriteString("\n")
		b.WriteString(italicStyle.Render("Undated"))
		b.WriteString("\n")
		for _, r := range undated {
			b.WriteString("  " + r.Title + "\n")
		}
	}
	return b.String()
}

func (m Model) detailView() string {
	var b strings.Builder
	r := m.detail

	title := r.Title
	if title == "" {
		title = "Untitled"
	}
	b.WriteString(headingStyle.Render(title))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Due", r.DateText},
		{"Category", category.Classify(r.Title, r.Description).Heading()},
		{"Source", r.Provenance()},
		{"Posted by", r.AuthorName},
		{"Description", r.Description},
		{"Original message", r.RawContent},
		{"Link", r.SourceLink},
		{"Harvested", r.Timestamp.String()},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		b.WriteString(faintStyle.Render(fmt.Sprintf("%-17s", row.label)))
		b.WriteString(row.value)
		b.WriteString("\n")
	}
	return b.String()
}

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}
