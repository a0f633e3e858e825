package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles"
	"github.com/vovakirdan/pipeloop/internal/storage"
)

const (
	listWidth      = 26 // Puzzle list panel width
	maxHistoryRows = 10
)

// BrowserModel lists puzzles with their solve history and opens them in the viewer.
type BrowserModel struct {
	puzzles      []puzzles.Puzzle
	cursor       int
	scrollOffset int
	opts         ViewerOptions
	keys         BrowserKeyMap
	help         help.Model
	history      table.Model
	records      []storage.SolveRecord
	status       string
	width        int
	height       int
	viewer       *ViewerModel
	quitting     bool
}

// NewBrowserModel creates a browser over the given puzzles.
func NewBrowserModel(list []puzzles.Puzzle, opts ViewerOptions) BrowserModel {
	h := help.New()
	h.Width = opts.Width

	m := BrowserModel{
		puzzles: list,
		opts:    opts,
		keys:    DefaultBrowserKeyMap(),
		help:    h,
		width:   opts.Width,
		height:  opts.Height,
	}
	m.history = m.createTable()
	m.loadHistory()
	return m
}

// createTable creates the history table sized to the detail panel.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Loop", Width: 6},
		{Title: "Encl", Width: 6},
		{Title: "Wind", Width: 5},
		{Title: "Time", Width: 9},
		{Title: "Via", Width: 4},
	}

	rows := m.height - 16 // Leave room for header, details and help
	if rows < 3 {
		rows = 3
	}
	if rows > maxHistoryRows {
		rows = maxHistoryRows
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// loadHistory loads solve history for the selected puzzle.
func (m *BrowserModel) loadHistory() {
	m.records = nil
	if m.opts.Store != nil && len(m.puzzles) > 0 {
		records, err := m.opts.Store.RecentSolves(m.puzzles[m.cursor].ID, maxHistoryRows)
		if err == nil {
			m.records = records
		}
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		wind := "ccw"
		if r.Clockwise {
			wind = "cw"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.LoopLength),
			fmt.Sprintf("%d", r.Enclosed),
			wind,
			r.Duration.Round(time.Microsecond).String(),
			r.Source,
		}
	}
	m.history.SetRows(rows)
	m.history.GotoTop()
}

// Init initializes the model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
		m.history = m.createTable()
		m.loadHistory()
	}

	if m.viewer != nil {
		return m.updateViewer(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// updateViewer forwards messages to the open viewer.
func (m BrowserModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viewer.Update(msg)
	if v, ok := newModel.(ViewerModel); ok {
		m.viewer = &v
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.viewer.WantsBack() {
		m.viewer = nil
		m.loadHistory()
		return m, nil
	}
	return m, cmd
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
			m.status = ""
			m.loadHistory()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.puzzles)-1 {
			m.cursor++
			m.updateScroll()
			m.status = ""
			m.loadHistory()
		}
	case key.Matches(msg, m.keys.Open):
		if len(m.puzzles) == 0 {
			return m, nil
		}
		opts := m.opts
		opts.Width, opts.Height = m.width, m.height
		v := NewViewerModel(m.puzzles[m.cursor], opts)
		m.viewer = &v
		return m, v.Init()
	case key.Matches(msg, m.keys.Solve):
		m.solveSelected()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// solveSelected runs the full analysis of the selected puzzle in one go.
func (m *BrowserModel) solveSelected() {
	if len(m.puzzles) == 0 {
		return
	}
	p := m.puzzles[m.cursor]

	start := time.Now()
	r, err := core.Analyze(p.Map)
	elapsed := time.Since(start)
	if err != nil {
		m.status = fmt.Sprintf("%s: %v", p.ID, err)
		return
	}

	m.status = fmt.Sprintf("%s: loop %d, farthest %d, enclosed %d", p.ID, r.LoopLength, r.Farthest, r.Enclosed)
	if problems := p.Check(r); len(problems) > 0 {
		m.status += " (" + strings.Join(problems, "; ") + ")"
	}

	if m.opts.Store != nil {
		if _, err := m.opts.Store.SaveSolve(solveRecord(p.ID, m.opts.Source, r, elapsed)); err != nil {
			m.status += " [history: " + err.Error() + "]"
		}
		m.loadHistory()
	}
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *BrowserModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

func (m BrowserModel) visibleItems() int {
	visible := m.height - 8 // Account for header and footer
	if visible < 3 {
		visible = 3
	}
	return visible
}

// View renders the browser, or the viewer when one is open.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.viewer != nil {
		return m.viewer.View()
	}

	t := m.opts.Theme
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("P I P E L O O P"), m.width))
	b.WriteString("\n\n")

	if len(m.puzzles) == 0 {
		b.WriteString(centerText(t.MenuDescription.Render("No puzzles found."), m.width))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	list := t.PanelBorder.Width(listWidth).Render(m.renderList())
	detail := t.PanelBorder.Render(m.renderDetail())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(t.HUDValue.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderList renders the scrolling puzzle list.
func (m BrowserModel) renderList() string {
	t := m.opts.Theme
	var b strings.Builder

	b.WriteString(t.MenuDescription.Render("Puzzles"))
	b.WriteString("\n")

	end := m.scrollOffset + m.visibleItems()
	if end > len(m.puzzles) {
		end = len(m.puzzles)
	}

	if m.scrollOffset > 0 {
		b.WriteString(t.MenuDescription.Render("  ..."))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.MenuItemActive
		}

		name := m.puzzles[i].ID
		maxLen := listWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		b.WriteString(style.Render(cursor + name))
		b.WriteString("\n")
	}
	if end < len(m.puzzles) {
		b.WriteString(t.MenuDescription.Render("  ..."))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderDetail renders the selected puzzle's details and history.
func (m BrowserModel) renderDetail() string {
	t := m.opts.Theme
	p := m.puzzles[m.cursor]
	var b strings.Builder

	b.WriteString(t.HUDTitle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(t.MenuDescription.Render(fmt.Sprintf("%s  %dx%d  %d pipes", p.ID, p.Map.W, p.Map.H, p.Map.CountPipes())))
	b.WriteString("\n")

	if p.Expect.Farthest > 0 || p.Expect.Enclosed > 0 {
		var want []string
		if p.Expect.Farthest > 0 {
			want = append(want, fmt.Sprintf("farthest %d", p.Expect.Farthest))
		}
		if p.Expect.Enclosed > 0 {
			want = append(want, fmt.Sprintf("enclosed %d", p.Expect.Enclosed))
		}
		b.WriteString(t.MenuDescription.Render("expects " + strings.Join(want, ", ")))
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(p.Metadata))
	for k := range p.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(t.MenuDescription.Render(fmt.Sprintf("%s: %s", k, p.Metadata[k])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.opts.Store == nil:
		b.WriteString(t.MenuDescription.Italic(true).Render("History disabled."))
	case len(m.records) == 0:
		b.WriteString(t.MenuDescription.Italic(true).Render("No solves recorded yet.\nPress x to solve or enter to step through."))
	default:
		b.WriteString(m.history.View())
	}

	return b.String()
}

// Selected returns the puzzle under the cursor, or nil when the list is empty.
func (m BrowserModel) Selected() *puzzles.Puzzle {
	if len(m.puzzles) == 0 {
		return nil
	}
	return &m.puzzles[m.cursor]
}

// InViewer returns true while a puzzle is open in the viewer.
func (m BrowserModel) InViewer() bool {
	return m.viewer != nil
}

// IsQuitting returns true if user wants to quit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser runs the puzzle browser until the user quits.
func RunBrowser(list []puzzles.Puzzle, opts ViewerOptions) error {
	prog := tea.NewProgram(
		NewBrowserModel(list, opts),
		tea.WithAltScreen(),
	)

	_, err := prog.Run()
	return err
}
