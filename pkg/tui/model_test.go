package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryansoe/eventory/pkg/calendar"
	"github.com/ryansoe/eventory/pkg/deadline"
)

func testRecords() []deadline.Record {
	return []deadline.Record{
		{ID: "1", Title: "Math Assignment #3", DateText: "December 15th, 2023", ChannelName: "math-101"},
		{ID: "2", Title: "Physics Lab", DateText: "December 10th, 2023", ChannelName: "physics-202"},
		{ID: "3", Title: "ACM Club Meeting", DateText: "December 12th, 2023", ChannelName: "acm-general"},
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned unexpected model type %T", next)
		}
	}
	return m
}

func TestFeedNavigationAndDetail(t *testing.T) {
	m := New(testRecords(), nil)

	m = press(t, m, "j")
	if m.cursor != 1 {
		t.Fatalf("cursor = %d after j, want 1", m.cursor)
	}
	m = press(t, m, "k", "k")
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp at 0, got %d", m.cursor)
	}

	m = press(t, m, "enter")
	if m.mode != modeDetail {
		t.Fatalf("enter should open detail, mode = %d", m.mode)
	}
	// Cursor 0 is the first club record since club sections lead the feed.
	if m.detail.ID != "3" {
		t.Fatalf("detail opened on %s, want 3", m.detail.ID)
	}
	if !strings.Contains(m.View(), "ACM Club Meeting") {
		t.Fatalf("detail view missing title:\n%s", m.View())
	}

	m = press(t, m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("esc should close detail")
	}
}

func TestSearchFiltersFeed(t *testing.T) {
	m := New(testRecords(), nil)

	m = press(t, m, "/")
	if m.mode != modeSearch {
		t.Fatalf("/ should enter search mode")
	}
	m = press(t, m, "p", "h", "y", "s")

	view := m.View()
	if !strings.Contains(view, "Physics Lab") {
		t.Fatalf("filtered view should keep Physics Lab:\n%s", view)
	}
	if strings.Contains(view, "Math Assignment") {
		t.Fatalf("filtered view should drop Math Assignment:\n%s", view)
	}

	m = press(t, m, "esc")
	if m.search.Value() != "" {
		t.Fatalf("esc should clear the search, got %q", m.search.Value())
	}
	if !strings.Contains(m.View(), "Math Assignment") {
		t.Fatalf("cleared search should restore all records")
	}
}

func TestCalendarNavigation(t *testing.T) {
	m := New(testRecords(), nil)

	m = press(t, m, "tab")
	if m.tab != tabCalendar {
		t.Fatalf("tab should switch to calendar")
	}

	start := m.month
	m = press(t, m, "l")
	if m.month != start.Next() {
		t.Fatalf("l should advance the month: %s", m.month)
	}
	m = press(t, m, "h", "h")
	if m.month != start.Prev() {
		t.Fatalf("h should step back: %s", m.month)
	}

	m = press(t, m, "t")
	if m.month != calendar.MonthOf(time.Now()) {
		t.Fatalf("t should return to the current month")
	}

	m = press(t, m, "tab")
	if m.tab != tabFeed {
		t.Fatalf("tab should toggle back to the feed")
	}
}

func TestCalendarDaySelectionClamps(t *testing.T) {
	m := New(nil, nil)
	m.month = calendar.Month{Year: 2025, Month: time.March}
	m.day = 31
	m = press(t, m, "tab") // calendar
	m = press(t, m, "j")
	if m.day != 31 {
		t.Fatalf("day should not pass the end of the month, got %d", m.day)
	}
	m.month = calendar.Month{Year: 2025, Month: time.February}
	m.clampDay()
	if m.day != 28 {
		t.Fatalf("day should clamp into February, got %d", m.day)
	}
}

func TestReloadMessage(t *testing.T) {
	reloaded := []deadline.Record{{ID: "fresh", Title: "Fresh Club Meeting"}}
	m := New(testRecords(), func() ([]deadline.Record, error) {
		return reloaded, nil
	})

	next, cmd := m.Update(ReloadMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("ReloadMsg should produce a load command")
	}
	msg := cmd()
	next, _ = m.Update(msg)
	m = next.(Model)
	if len(m.records) != 1 || m.records[0].ID != "fresh" {
		t.Fatalf("reload did not replace records: %v", m.records)
	}
}

func TestQuit(t *testing.T) {
	m := New(nil, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected quit message, got %T", msg)
	}
}
