package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles"
	"github.com/vovakirdan/pipeloop/internal/storage"
)

// ViewerOptions configures a stage viewer.
type ViewerOptions struct {
	Render         core.RenderOptions
	Theme          Theme
	Store          *storage.Store // Optional; completed analyses are recorded here
	Source         string         // History source tag, "cli" or "ssh"
	StepsPerSecond int            // Autoplay speed
	Width          int
	Height         int
}

// DefaultViewerOptions returns viewer options with the default theme and no storage.
func DefaultViewerOptions() ViewerOptions {
	return ViewerOptions{
		Render:         core.DefaultRenderOptions(),
		Theme:          DefaultTheme(),
		Source:         "cli",
		StepsPerSecond: 2,
		Width:          80,
		Height:         24,
	}
}

var viewerStages = []core.Stage{
	core.StageUnparsed,
	core.StageTraced,
	core.StageOriented,
	core.StageSeeded,
	core.StageFilled,
}

// ViewerModel steps through the analysis of one puzzle stage by stage.
type ViewerModel struct {
	puzzle     puzzles.Puzzle
	analysis   *core.Analysis
	opts       ViewerOptions
	keys       ViewerKeyMap
	help       help.Model
	width      int
	height     int
	playing    bool
	elapsed    time.Duration
	saved      bool
	saveErr    error
	standalone bool
	quitting   bool
	back       bool
}

// NewViewerModel creates a viewer for p positioned before the first stage.
func NewViewerModel(p puzzles.Puzzle, opts ViewerOptions) ViewerModel {
	h := help.New()
	h.Width = opts.Width

	return ViewerModel{
		puzzle:   p,
		analysis: p.NewAnalysis(),
		opts:     opts,
		keys:     DefaultViewerKeyMap(),
		help:     h,
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Init initializes the model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if !m.playing {
			return m, nil
		}
		m.step()
		if m.done() {
			m.playing = false
			return m, nil
		}
		return m, tickCmd(m.opts.StepsPerSecond)
	}
	return m, nil
}

func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.step()
	case key.Matches(msg, m.keys.Finish):
		for !m.done() {
			m.step()
		}
		m.playing = false
	case key.Matches(msg, m.keys.Play):
		if m.done() {
			return m, nil
		}
		m.playing = !m.playing
		if m.playing {
			return m, tickCmd(m.opts.StepsPerSecond)
		}
	case key.Matches(msg, m.keys.Reset):
		m.analysis = m.puzzle.NewAnalysis()
		m.playing = false
		m.elapsed = 0
		m.saved = false
		m.saveErr = nil
	case key.Matches(msg, m.keys.Glyphs):
		m.opts.Render.BoxGlyphs = !m.opts.Render.BoxGlyphs
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// done reports whether the pipeline has finished or failed.
func (m ViewerModel) done() bool {
	return m.analysis.Stage() == core.StageFilled || m.analysis.Err() != nil
}

// step advances one stage and records the solve once the pipeline completes.
func (m *ViewerModel) step() {
	if m.done() {
		return
	}
	start := time.Now()
	_, err := m.analysis.Advance()
	m.elapsed += time.Since(start)
	if err == nil && m.analysis.Stage() == core.StageFilled {
		m.record()
	}
}

func (m *ViewerModel) record() {
	if m.opts.Store == nil || m.saved {
		return
	}
	r, err := m.analysis.Result()
	if err != nil {
		return
	}
	_, m.saveErr = m.opts.Store.SaveSolve(solveRecord(m.puzzle.ID, m.opts.Source, r, m.elapsed))
	m.saved = m.saveErr == nil
}

// solveRecord converts an analysis result into a history row.
func solveRecord(puzzleID, source string, r core.Result, elapsed time.Duration) storage.SolveRecord {
	return storage.SolveRecord{
		PuzzleID:   puzzleID,
		Source:     source,
		Width:      r.Width,
		Height:     r.Height,
		LoopLength: r.LoopLength,
		Farthest:   r.Farthest,
		Enclosed:   r.Enclosed,
		Clockwise:  r.Clockwise,
		Duration:   elapsed,
	}
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.opts.Theme
	a := m.analysis
	var b strings.Builder

	// Title
	b.WriteString(t.HUDTitle.Render(m.puzzle.Name))
	b.WriteString(t.HUDSeparator.Render(fmt.Sprintf("  %s  %dx%d", m.puzzle.ID, a.Map.W, a.Map.H)))
	b.WriteString("\n")

	// Stage progress
	parts := make([]string, len(viewerStages))
	for i, s := range viewerStages {
		style := t.HUDControls
		if s == a.Stage() {
			style = t.MenuItemActive
		}
		parts[i] = style.Render(s.String())
	}
	b.WriteString(strings.Join(parts, t.HUDSeparator.Render(" > ")))
	b.WriteString("\n\n")

	b.WriteString(RenderAnalysis(a, m.opts.Render, t))
	b.WriteString("\n\n")

	b.WriteString(m.renderStats())
	b.WriteString("\n")

	if err := a.Err(); err != nil {
		b.WriteString(t.HUDError.Render("Error: " + err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderStats renders what the completed stages have found so far.
func (m ViewerModel) renderStats() string {
	t := m.opts.Theme
	a := m.analysis
	sep := t.HUDSeparator.Render(" | ")

	field := func(label string, value any) string {
		return t.HUDControls.Render(label+": ") + t.HUDValue.Render(fmt.Sprint(value))
	}

	// Accessors would advance the pipeline, so only ask for finished stages.
	var fields []string
	stage := a.Stage()
	if stage >= core.StageTraced {
		if loop, err := a.Loop(); err == nil {
			fields = append(fields, field("Loop", loop.Len()), field("Farthest", loop.Farthest()))
		}
	}
	if stage >= core.StageOriented {
		if o, err := a.Orientation(); err == nil {
			fields = append(fields, field("Winding", o))
		}
	}
	if stage >= core.StageSeeded {
		if seeds, err := a.Seeds(); err == nil {
			fields = append(fields, field("Seeds", len(seeds)))
		}
	}
	if stage == core.StageFilled {
		if r, err := a.Result(); err == nil {
			fields = append(fields, field("Enclosed", r.Enclosed), field("Time", m.elapsed.Round(time.Microsecond)))
			for _, problem := range m.puzzle.Check(r) {
				fields = append(fields, t.HUDError.Render(problem))
			}
		}
	}
	if m.saveErr != nil {
		fields = append(fields, t.HUDError.Render("history: "+m.saveErr.Error()))
	} else if m.saved {
		fields = append(fields, t.HUDControls.Render("saved"))
	}
	if m.playing {
		fields = append(fields, t.MenuItemActive.Render("playing"))
	}

	if len(fields) == 0 {
		return t.HUDControls.Render("Press space to trace the loop.")
	}
	return strings.Join(fields, sep)
}

// Analysis returns the analysis being viewed.
func (m ViewerModel) Analysis() *core.Analysis {
	return m.analysis
}

// IsQuitting returns true if user wants to quit entirely.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ViewerModel) WantsBack() bool {
	return m.back
}

// Saved returns true once the completed analysis has been written to history.
func (m ViewerModel) Saved() bool {
	return m.saved
}

// RunViewer runs the stage viewer for one puzzle until the user quits.
func RunViewer(p puzzles.Puzzle, opts ViewerOptions) error {
	model := NewViewerModel(p, opts)
	model.standalone = true

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := prog.Run()
	return err
}
