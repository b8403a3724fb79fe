// ABOUTME: TUI initialization and control
// ABOUTME: Wires the canvas model into a bubbletea program with mouse tracking
package ui

import (
	"github.com/Resonate-Protocol/sketchwave/internal/app"
	"github.com/Resonate-Protocol/sketchwave/internal/player"
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel creates a new TUI model. The canvas must be the app's OnRender target.
func NewModel(a *app.App, canvas *Canvas, out *player.Output) Model {
	canvas.Request(a.Snapshot())
	return Model{
		app:    a,
		output: out,
		canvas: canvas,
	}
}

// Run creates the TUI program
func Run(model Model) (*tea.Program, error) {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	return p, nil
}
