// ABOUTME: Tests for TUI model and event translation
// ABOUTME: Tests mouse drawing, key bindings and playback messages
package ui

import (
	"strings"
	"testing"

	"github.com/Resonate-Protocol/sketchwave/internal/app"
	"github.com/Resonate-Protocol/sketchwave/internal/player"
	"github.com/Resonate-Protocol/sketchwave/pkg/audio/output"
	"github.com/Resonate-Protocol/sketchwave/pkg/audio/resample"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) (Model, *app.App) {
	t.Helper()

	canvas := NewCanvas(5)
	out := player.NewOutput(output.NewNull())
	a, err := app.New(app.Config{
		Params: resample.Params{
			SampleRate:      44100,
			Channels:        2,
			BitDepth:        16,
			DownsampleRatio: 100,
			DurationSeconds: 1,
			CanvasHeight:    400,
		},
		OnRender: canvas.Request,
		OnError:  canvas.ShowError,
	}, out)
	if err != nil {
		t.Fatalf("app.New() failed: %v", err)
	}
	t.Cleanup(func() {
		a.Close()
		out.Close()
	})

	m := NewModel(a, canvas, out)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model), a
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func drawStroke(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, mouse(10, 12, tea.MouseActionPress))
	m, _ = send(t, m, mouse(20, 12, tea.MouseActionMotion))
	m, _ = send(t, m, mouse(30, 5, tea.MouseActionMotion))
	m, _ = send(t, m, mouse(30, 5, tea.MouseActionRelease))
	return m
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(t)

	if m.canvas.Requests() != 1 {
		t.Errorf("expected initial render request, got %d", m.canvas.Requests())
	}
	if m.width != 100 || m.height != 30 {
		t.Errorf("expected 100x30, got %dx%d", m.width, m.height)
	}

	cols, rows := m.canvasSize()
	if cols != 100 || rows != 24 {
		t.Errorf("expected 100x24 canvas, got %dx%d", cols, rows)
	}
}

func TestViewBeforeResize(t *testing.T) {
	canvas := NewCanvas(5)
	a, err := app.New(app.Config{Params: resample.Params{
		SampleRate: 44100, Channels: 2, BitDepth: 16, DownsampleRatio: 100, DurationSeconds: 1, CanvasHeight: 400,
	}, OnRender: canvas.Request}, nil)
	if err != nil {
		t.Fatalf("app.New() failed: %v", err)
	}

	m := NewModel(a, canvas, nil)
	if m.View() != "Loading..." {
		t.Errorf("expected loading view, got %q", m.View())
	}
}

func TestMouseDrawing(t *testing.T) {
	m, a := newTestModel(t)

	m, _ = send(t, m, mouse(10, 12, tea.MouseActionPress))
	if a.State() != app.Drawing {
		t.Errorf("expected drawing after press, got %s", a.State())
	}

	m, _ = send(t, m, mouse(20, 12, tea.MouseActionMotion))
	m, _ = send(t, m, mouse(15, 12, tea.MouseActionMotion))
	m, _ = send(t, m, mouse(20, 12, tea.MouseActionRelease))

	if a.State() != app.Idle {
		t.Errorf("expected idle after release, got %s", a.State())
	}

	d := a.Drawing()
	if d.Len() != 1 {
		t.Fatalf("expected 1 point, got %d: %v", d.Len(), d.Points)
	}
	if d.Points[0].X != 90 || d.Points[0].Y != 175 {
		t.Errorf("expected point (90,175), got %v", d.Points[0])
	}
	if !m.cursor.Valid || m.cursor.X != 90 {
		t.Errorf("expected cursor at the last position, got %+v", m.cursor)
	}
}

func TestMouseLeavingCanvasEndsGesture(t *testing.T) {
	m, a := newTestModel(t)

	m, _ = send(t, m, mouse(10, 12, tea.MouseActionPress))
	m, _ = send(t, m, mouse(10, 0, tea.MouseActionMotion))

	if a.State() != app.Idle {
		t.Errorf("expected gesture to end when leaving the canvas, got %s", a.State())
	}

	send(t, m, mouse(30, 12, tea.MouseActionMotion))
	if a.Drawing().Len() != 0 {
		t.Error("expected no points after leaving the canvas")
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	m, a := newTestModel(t)
	m = drawStroke(t, m)

	m, cmd := send(t, m, key(" "))
	if a.State() != app.Playing {
		t.Fatalf("expected playing, got %s", a.State())
	}
	if cmd == nil {
		t.Fatal("expected a command waiting for playback to end")
	}

	m, _ = send(t, m, key(" "))
	if a.State() != app.Idle {
		t.Errorf("expected idle after stop, got %s", a.State())
	}

	// The stopped session reports back and is ignored
	msg := cmd()
	if _, ok := msg.(PlaybackEndedMsg); !ok {
		t.Fatalf("expected PlaybackEndedMsg, got %T", msg)
	}
	send(t, m, msg)
	if a.State() != app.Idle {
		t.Errorf("expected idle, got %s", a.State())
	}
}

func TestPlaybackEndedMsg(t *testing.T) {
	m, a := newTestModel(t)
	m = drawStroke(t, m)
	before := a.Drawing()

	m, _ = send(t, m, key("p"))
	session := a.Session()
	if session == nil {
		t.Fatal("expected an active session")
	}

	m, _ = send(t, m, PlaybackEndedMsg{Session: session})

	if a.State() != app.Idle {
		t.Errorf("expected idle, got %s", a.State())
	}
	if !strings.Contains(m.View(), app.PlayLabel) {
		t.Error("expected play label restored in view")
	}
	if a.Drawing().Len() != before.Len() {
		t.Error("expected drawing unchanged by playback")
	}
}

func TestResetKey(t *testing.T) {
	m, a := newTestModel(t)
	m = drawStroke(t, m)

	send(t, m, key("r"))

	if !a.Drawing().Empty() {
		t.Error("expected empty drawing after reset")
	}
	if a.PlayEnabled() {
		t.Error("expected play disabled after reset")
	}
}

func TestVolumeKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, key("m"))
	if !m.output.IsMuted() {
		t.Error("expected muted")
	}

	m.output.SetVolume(50)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.output.GetVolume() != 55 {
		t.Errorf("expected volume 55, got %d", m.output.GetVolume())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.output.GetVolume() != 50 {
		t.Errorf("expected volume 50, got %d", m.output.GetVolume())
	}
}

func TestControlClicks(t *testing.T) {
	m, a := newTestModel(t)
	m = drawStroke(t, m)

	_, rows := m.canvasSize()
	controls := m.controlsRow(rows)

	m, cmd := send(t, m, mouse(2, controls, tea.MouseActionPress))
	if a.State() != app.Playing || cmd == nil {
		t.Fatalf("expected play button to start playback, got %s", a.State())
	}

	resetCol := len(playButton(app.StopLabel)) + 3
	send(t, m, mouse(resetCol, controls, tea.MouseActionPress))
	if a.State() != app.Idle || !a.Drawing().Empty() {
		t.Errorf("expected reset button to clear everything, got %s with %d points", a.State(), a.Drawing().Len())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, key("q"))
	if !m.quitting {
		t.Error("expected quitting")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("unexpected view %q", m.View())
	}
}

func TestViewLayout(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	for _, want := range []string{"Sketchwave", "START", "END", "x: -, y: -", app.PlayLabel, resetButton} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
