// ABOUTME: Bubbletea model for the sketch canvas TUI
// ABOUTME: Maps mouse and key input onto app events and lays out the screen
package ui

import (
	"fmt"
	"strings"

	"github.com/Resonate-Protocol/sketchwave/internal/app"
	"github.com/Resonate-Protocol/sketchwave/internal/player"
	"github.com/Resonate-Protocol/sketchwave/internal/version"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	canvasTop    = 2 // title + blank line
	chromeLines  = 6 // title, blank, readout, controls, help, trailing
	minCanvasCol = 12
	minCanvasRow = 5
	maxCanvasRow = 40

	resetButton = "[ Reset ]"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	stateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	buttonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	disabledStyle = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// PlaybackEndedMsg is delivered when a playback session finishes or is stopped
type PlaybackEndedMsg struct {
	Session *player.Session
}

// Model represents the TUI state
type Model struct {
	app    *app.App
	output *player.Output
	canvas *Canvas
	cursor Cursor

	// Dimensions
	width  int
	height int

	quitting bool
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case PlaybackEndedMsg:
		m.app.PlaybackEnded(msg.Session)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	if m.width == 0 {
		return "Loading..."
	}

	cols, rows := m.canvasSize()
	snap := m.canvas.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader(snap))
	b.WriteString("\n\n")
	b.WriteString(m.canvas.View(cols, rows))
	b.WriteString(valueStyle.Render(m.canvas.Readout(m.cursor)))
	b.WriteString("\n")
	b.WriteString(m.renderControls(snap))
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	b.WriteString("\n")

	return b.String()
}

// renderHeader renders the title, state and output level
func (m Model) renderHeader(snap app.Snapshot) string {
	level := "no output"
	if m.output != nil {
		level = fmt.Sprintf("vol %d%%", m.output.GetVolume())
		if m.output.IsMuted() {
			level = "muted"
		}
	}

	return fmt.Sprintf("%s  %s  %s",
		titleStyle.Render(version.Product),
		stateStyle.Render(snap.State.String()),
		valueStyle.Render(fmt.Sprintf("%d points  %s", snap.Drawing.Len(), level)))
}

// renderControls renders the play/stop and reset buttons
func (m Model) renderControls(snap app.Snapshot) string {
	play := playButton(snap.PlayLabel)
	if snap.PlayEnabled {
		play = buttonStyle.Render(play)
	} else {
		play = disabledStyle.Render(play)
	}

	s := play + "  " + buttonStyle.Render(resetButton)
	if err := m.canvas.Err(); err != nil {
		s += "  " + errorStyle.Render(err.Error())
	}
	return s
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return helpStyle.Render("drag:Draw  space:Play/Stop  r:Reset  ↑/↓:Volume  m:Mute  q:Quit")
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.app.Close()
		m.quitting = true
		return m, tea.Quit
	case " ", "p":
		return m.togglePlay()
	case "r":
		m.app.Reset()
	case "m":
		if m.output != nil {
			m.output.SetMuted(!m.output.IsMuted())
		}
	case "up":
		if m.output != nil {
			m.output.SetVolume(m.output.GetVolume() + 5)
		}
	case "down":
		if m.output != nil {
			m.output.SetVolume(m.output.GetVolume() - 5)
		}
	}

	return m, nil
}

// handleMouse translates terminal mouse events into canvas pointer events
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := tea.MouseEvent(msg)
	cols, rows := m.canvasSize()

	if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft && ev.Y == m.controlsRow(rows) {
		return m.handleControlClick(ev.X)
	}

	x, y, ok := m.toCanvas(ev.X, ev.Y, cols, rows)
	if !ok {
		m.app.PointerLeave()
		return m, nil
	}

	m.cursor = Cursor{X: x, Y: y, Valid: true}

	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft {
			m.app.PointerDown()
		}
	case tea.MouseActionMotion:
		m.app.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.app.PointerUp()
	}

	return m, nil
}

// handleControlClick activates the button under column x
func (m Model) handleControlClick(x int) (tea.Model, tea.Cmd) {
	play := len(playButton(m.app.PlayLabel()))
	switch {
	case x < play:
		return m.togglePlay()
	case x >= play+2 && x < play+2+len(resetButton):
		m.app.Reset()
	}
	return m, nil
}

func (m Model) togglePlay() (tea.Model, tea.Cmd) {
	session := m.app.TogglePlay()
	if session == nil {
		return m, nil
	}
	return m, waitForEnd(session)
}

// waitForEnd reports the session's completion back to the event loop
func waitForEnd(session *player.Session) tea.Cmd {
	return func() tea.Msg {
		<-session.Done()
		return PlaybackEndedMsg{Session: session}
	}
}

// canvasSize returns the canvas grid size for the current terminal
func (m Model) canvasSize() (cols, rows int) {
	snap := m.canvas.Snapshot()

	cols = min(m.width, snap.Width)
	if cols < minCanvasCol {
		cols = minCanvasCol
	}

	rows = m.height - chromeLines
	if rows < minCanvasRow {
		rows = minCanvasRow
	}
	if rows > maxCanvasRow {
		rows = maxCanvasRow
	}
	return cols, rows
}

// toCanvas maps a terminal cell to canvas pixels
func (m Model) toCanvas(col, row, cols, rows int) (x, y int, ok bool) {
	row -= canvasTop
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	snap := m.canvas.Snapshot()
	return cellToPixel(col, cols, snap.Width), cellToPixel(row, rows, snap.Height), true
}

// controlsRow is the terminal row holding the buttons
func (m Model) controlsRow(rows int) int {
	return canvasTop + rows + 1
}

func playButton(label string) string {
	return "[ " + label + " ]"
}
