package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/daymark/internal/cli/formatter"
	"github.com/alexanderramin/daymark/internal/contract"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// browseRow is a flattened line of the day view: either a group header or
// a tracker.
type browseRow struct {
	isHeader bool
	title    string
	view     contract.TrackerView
}

// overviewLoadedMsg carries a freshly loaded day view.
type overviewLoadedMsg struct {
	resp *contract.OverviewResponse
	err  error
}

type browseKeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Pin     key.Binding
	Filter  key.Binding
	Search  key.Binding
	Quit    key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		PrevDay: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev day")),
		NextDay: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Pin:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin/unpin")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is the bubbletea Model behind `daymark browse`.
type browseModel struct {
	app  *App
	keys browseKeyMap

	date      time.Time
	modeIdx   int // index into domain.AllFilterModes
	search    textinput.Model
	searching bool

	rows    []browseRow
	cursor  int
	loading bool
	err     error
	width   int
}

func newBrowseModel(app *App) browseModel {
	ti := textinput.New()
	ti.Placeholder = "search trackers"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return browseModel{
		app:     app,
		keys:    newBrowseKeyMap(),
		date:    time.Now(),
		search:  ti,
		loading: true,
	}
}

func (m browseModel) mode() domain.FilterMode {
	return domain.AllFilterModes[m.modeIdx]
}

func (m browseModel) Init() tea.Cmd {
	return m.loadOverview()
}

func (m browseModel) loadOverview() tea.Cmd {
	app := m.app
	req := contract.OverviewRequest{
		Date:   m.date,
		Mode:   m.mode(),
		Search: m.search.Value(),
	}
	return func() tea.Msg {
		resp, err := app.Overview.Overview(context.Background(), req)
		return overviewLoadedMsg{resp: resp, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case overviewLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.rows = flattenOverview(msg.resp)
			m.clampCursor()
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// updateSearch routes keys to the search input. Every edit reloads the view
// so results narrow as the user types.
func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		m.loading = true
		return m, m.loadOverview()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, tea.Batch(cmd, m.loadOverview())
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevDay):
		m.date = m.date.AddDate(0, 0, -1)
		m.loading = true
		return m, m.loadOverview()

	case key.Matches(msg, m.keys.NextDay):
		m.date = m.date.AddDate(0, 0, 1)
		m.loading = true
		return m, m.loadOverview()

	case key.Matches(msg, m.keys.Today):
		m.date = time.Now()
		m.loading = true
		return m, m.loadOverview()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.currentTracker(); ok {
			return m, m.toggleCompletion(row.view)
		}
		return m, nil

	case key.Matches(msg, m.keys.Pin):
		if row, ok := m.currentTracker(); ok {
			return m, m.togglePin(row.view)
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.modeIdx = (m.modeIdx + 1) % len(domain.AllFilterModes)
		if m.mode() == domain.FilterToday {
			m.date = time.Now()
		}
		m.loading = true
		return m, m.loadOverview()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	}
	return m, nil
}

func (m browseModel) toggleCompletion(view contract.TrackerView) tea.Cmd {
	app := m.app
	date := m.date
	load := m.loadOverview()
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if view.Completed {
			err = app.Records.Uncheck(ctx, view.Tracker.ID, date)
		} else {
			err = app.Records.Check(ctx, view.Tracker.ID, date)
		}
		if err != nil {
			return overviewLoadedMsg{err: err}
		}
		return load()
	}
}

func (m browseModel) togglePin(view contract.TrackerView) tea.Cmd {
	app := m.app
	load := m.loadOverview()
	return func() tea.Msg {
		if err := app.Trackers.SetPinned(context.Background(), view.Tracker.ID, !view.Tracker.IsPinned); err != nil {
			return overviewLoadedMsg{err: err}
		}
		return load()
	}
}

// moveCursor steps over header rows so the cursor always lands on a tracker.
func (m *browseModel) moveCursor(delta int) {
	i := m.cursor
	for {
		i += delta
		if i < 0 || i >= len(m.rows) {
			return
		}
		if !m.rows[i].isHeader {
			m.cursor = i
			return
		}
	}
}

func (m *browseModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	// Settle on a tracker row if the cursor landed on a header.
	if m.cursor < len(m.rows) && m.rows[m.cursor].isHeader {
		m.moveCursor(1)
	}
}

func (m browseModel) currentTracker() (browseRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return browseRow{}, false
	}
	row := m.rows[m.cursor]
	return row, !row.isHeader
}

func flattenOverview(resp *contract.OverviewResponse) []browseRow {
	var rows []browseRow
	for _, group := range resp.Groups {
		rows = append(rows, browseRow{isHeader: true, title: group.Title})
		for _, view := range group.Trackers {
			rows = append(rows, browseRow{view: view})
		}
	}
	return rows
}

func (m browseModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %s  %s",
		formatter.Bold(m.date.Format("Mon, Jan 2 2006")),
		formatter.FilterBadge(m.mode()),
		formatter.Dim(formatter.HumanDate(m.date)))
	b.WriteString("\n  " + title + "\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString("  " + m.search.View() + "\n")
	}

	switch {
	case m.loading:
		b.WriteString("\n  " + formatter.Dim("Loading...") + "\n")
	case m.err != nil:
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case len(m.rows) == 0:
		b.WriteString("\n  " + formatter.Dim("Nothing to track on this day.") + "\n")
	default:
		b.WriteString("\n")
		for i, row := range m.rows {
			b.WriteString(m.renderRow(row, i == m.cursor) + "\n")
		}
	}

	help := "←/→ day  ↑/↓ move  space toggle  f filter  p pin  / search  t today  q quit"
	b.WriteString("\n  " + formatter.Dim(help) + "\n")
	return b.String()
}

func (m browseModel) renderRow(row browseRow, isCursor bool) string {
	if row.isHeader {
		return "\n  " + formatter.Header(row.title)
	}

	cursor := "  "
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}
	return "  " + cursor + formatter.TrackerLine(row.view)
}
