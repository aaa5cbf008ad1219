package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryansoe/eventory/pkg/calendar"
	"github.com/ryansoe/eventory/pkg/deadline"
	"github.com/ryansoe/eventory/pkg/views"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeDetail
)

type tab int

const (
	tabFeed tab = iota
	tabCalendar
)

// ReloadMsg asks the dashboard to re-read its record source, typically
// because the on-disk cache changed underneath it.
type ReloadMsg struct{}

type recordsMsg []deadline.Record

type errMsg struct{ err error }

// Model contains the dashboard UI state. All deadline data flows through
// views.Build on render, so the model never caches derived state.
type Model struct {
	reload  func() ([]deadline.Record, error)
	records []deadline.Record

	mode   mode
	tab    tab
	search textinput.Model
	cursor int

	month calendar.Month
	day   int

	detail deadline.Record
	status string
	err    error

	termWidth  int
	termHeight int
}

// New creates the dashboard model. reload may be nil when there is no live
// source to re-read (demo mode).
func New(records []deadline.Record, reload func() ([]deadline.Record, error)) Model {
	ti := textinput.New()
	ti.Placeholder = "search deadlines"
	ti.Prompt = "/"
	ti.CharLimit = 128

	now := time.Now()
	return Model{
		reload:  reload,
		records: records,
		search:  ti,
		month:   calendar.MonthOf(now),
		day:     now.Day(),
		status:  statusNormal,
	}
}

const (
	statusNormal   = "tab switch view, / search, j/k move, enter detail, r refresh, q quit"
	statusSearch   = "enter keep filter, esc clear"
	statusDetail   = "esc back"
	statusCalendar = "tab switch view, h/l month, j/k day, / search, r refresh, q quit"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case ReloadMsg:
		return m, m.load()

	case recordsMsg:
		m.records = msg
		m.clampCursor()
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeNormal
		m.status = m.normalStatus()
		m.clampCursor()
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = modeNormal
		m.status = m.normalStatus()
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.mode = modeNormal
		m.status = m.normalStatus()
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.tab == tabFeed {
			m.tab = tabCalendar
		} else {
			m.tab = tabFeed
		}
		m.status = m.normalStatus()
		return m, nil

	case "/":
		m.mode = modeSearch
		m.status = statusSearch
		return m, m.search.Focus()

	case "r":
		return m, m.load()
	}

	if m.tab == tabCalendar {
		return m.updateCalendar(msg)
	}
	return m.updateFeed(msg)
}

func (m Model) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flat := m.ordered()
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(flat)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		if len(flat) > 0 {
			m.cursor = len(flat) - 1
		}
	case "enter":
		if m.cursor < len(flat) {
			m.detail = flat[m.cursor]
			m.mode = modeDetail
			m.status = statusDetail
		}
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.month = m.month.Prev()
		m.clampDay()
	case "l", "right":
		m.month = m.month.Next()
		m.clampDay()
	case "j", "down":
		if m.day < m.month.Days() {
			m.day++
		}
	case "k", "up":
		if m.day > 1 {
			m.day--
		}
	case "t":
		now := time.Now()
		m.month = calendar.MonthOf(now)
		m.day = now.Day()
	}
	return m, nil
}

func (m *Model) load() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	reload := m.reload
	return func() tea.Msg {
		records, err := reload()
		if err != nil {
			return errMsg{err}
		}
		return recordsMsg(records)
	}
}

// views builds the filtered/sorted/partitioned forms for the current search.
func (m Model) views() views.Views {
	return views.Build(m.records, views.Filter{
		Search: m.search.Value(),
		Sort:   views.SortByDate,
	})
}

// ordered is the feed traversal order: category sections concatenated, which
// is what the cursor walks.
func (m Model) ordered() []deadline.Record {
	v := m.views()
	out := make([]deadline.Record, 0, len(v.Flat))
	for _, c := range categories() {
		out = append(out, v.ByCategory[c]...)
	}
	return out
}

func (m *Model) clampCursor() {
	if n := len(m.ordered()); m.cursor >= n {
		if n == 0 {
			m.cursor = 0
		} else {
			m.cursor = n - 1
		}
	}
}

func (m *Model) clampDay() {
	if m.day > m.month.Days() {
		m.day = m.month.Days()
	}
	if m.day < 1 {
		m.day = 1
	}
}

func (m Model) normalStatus() string {
	if m.tab == tabCalendar {
		return statusCalendar
	}
	return statusNormal
}
