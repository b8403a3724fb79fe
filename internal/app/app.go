// ABOUTME: Draw/play orchestration for the sketch canvas
// ABOUTME: Owns the drawing, the playback session and the state machine
package app

import (
	"fmt"
	"log"

	"github.com/Resonate-Protocol/sketchwave/internal/player"
	"github.com/Resonate-Protocol/sketchwave/pkg/audio"
	"github.com/Resonate-Protocol/sketchwave/pkg/audio/resample"
	"github.com/Resonate-Protocol/sketchwave/pkg/sketch"
)

// Play control labels
const (
	PlayLabel = "Play Audio"
	StopLabel = "Stop Audio"
)

// State is the orchestration state
type State int

const (
	Idle State = iota
	Drawing
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Playing:
		return "playing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Player starts finished signals on an audio device
type Player interface {
	Play(sig *audio.Signal) (*player.Session, error)
}

// Snapshot is everything a renderer needs to draw the canvas
type Snapshot struct {
	Drawing         sketch.Drawing
	State           State
	PlayEnabled     bool
	PlayLabel       string
	Width           int
	Height          int
	DurationSeconds int
}

// Config holds orchestration configuration
type Config struct {
	Params resample.Params

	// OnRender is called whenever the canvas must be redrawn
	OnRender func(Snapshot)

	// OnError is called when playback cannot start
	OnError func(error)
}

// App owns the drawing and the playback session. All methods must be called
// from the single event loop goroutine.
type App struct {
	config    Config
	sampler   *sketch.Sampler
	resampler *resample.Resampler
	player    Player
	session   *player.Session
}

// New creates an idle app with an empty drawing
func New(config Config, p Player) (*App, error) {
	resampler, err := resample.New(config.Params)
	if err != nil {
		return nil, fmt.Errorf("invalid resampler params: %w", err)
	}

	return &App{
		config:    config,
		sampler:   sketch.NewSampler(config.Params.CanvasWidth(), config.Params.CanvasHeight),
		resampler: resampler,
		player:    p,
	}, nil
}

// State returns the current state. A gesture made during playback reports Playing.
func (a *App) State() State {
	if a.session != nil {
		return Playing
	}
	if a.sampler.Active() {
		return Drawing
	}
	return Idle
}

// PlayEnabled reports whether the play/stop control accepts activation
func (a *App) PlayEnabled() bool {
	return a.session != nil || a.sampler.Len() > 0
}

// PlayLabel returns the play/stop control label
func (a *App) PlayLabel() string {
	if a.session != nil {
		return StopLabel
	}
	return PlayLabel
}

// Drawing returns a copy of the current drawing
func (a *App) Drawing() sketch.Drawing {
	return a.sampler.Drawing()
}

// Session returns the active playback session, if any
func (a *App) Session() *player.Session {
	return a.session
}

// Snapshot returns the current render state
func (a *App) Snapshot() Snapshot {
	width, height := a.sampler.Bounds()
	return Snapshot{
		Drawing:         a.sampler.Drawing(),
		State:           a.State(),
		PlayEnabled:     a.PlayEnabled(),
		PlayLabel:       a.PlayLabel(),
		Width:           width,
		Height:          height,
		DurationSeconds: a.config.Params.DurationSeconds,
	}
}

// PointerDown starts a drag gesture
func (a *App) PointerDown() {
	a.sampler.BeginDrag()
	a.render()
}

// PointerMove offers a sample to the drawing and reports whether it was recorded
func (a *App) PointerMove(x, y int) bool {
	if !a.sampler.Admit(x, y) {
		return false
	}
	a.render()
	return true
}

// PointerUp ends the drag gesture
func (a *App) PointerUp() {
	a.endGesture()
}

// PointerLeave ends the drag gesture when the pointer exits the canvas
func (a *App) PointerLeave() {
	a.endGesture()
}

func (a *App) endGesture() {
	if !a.sampler.Active() {
		return
	}
	a.sampler.EndDrag()
	a.render()
}

// TogglePlay stops playback if playing, otherwise starts it.
// It returns the new session, or nil when nothing started.
func (a *App) TogglePlay() *player.Session {
	if a.session != nil {
		a.Stop()
		return nil
	}
	return a.Play()
}

// Play resamples the drawing once and starts playback
func (a *App) Play() *player.Session {
	if a.session != nil || !a.PlayEnabled() {
		return nil
	}

	sig := a.resampler.Resample(a.sampler.Drawing())

	if a.player == nil {
		log.Printf("No audio player configured, ignoring play")
		return nil
	}

	session, err := a.player.Play(sig)
	if err != nil {
		log.Printf("Playback failed: %v", err)
		if a.config.OnError != nil {
			a.config.OnError(err)
		}
		return nil
	}
	if session == nil {
		log.Printf("Player returned no session, staying idle")
		return nil
	}

	a.session = session
	a.render()
	return session
}

// Stop halts playback and releases the session
func (a *App) Stop() {
	if a.session == nil {
		return
	}
	a.session.Stop()
	a.session = nil
	log.Printf("Playback stopped")
	a.render()
}

// PlaybackEnded handles the player's completion notice. Notices for a session
// that was already stopped or replaced are ignored.
func (a *App) PlaybackEnded(session *player.Session) bool {
	if session == nil || session != a.session {
		return false
	}
	a.session = nil
	log.Printf("Playback %s finished", session.ID)
	a.render()
	return true
}

// Reset clears the drawing and stops any playback
func (a *App) Reset() {
	a.sampler.Reset()
	if a.session != nil {
		a.session.Stop()
		a.session = nil
	}
	a.render()
}

// Close stops playback
func (a *App) Close() {
	if a.session != nil {
		a.session.Stop()
		a.session = nil
	}
}

func (a *App) render() {
	if a.config.OnRender != nil {
		a.config.OnRender(a.Snapshot())
	}
}
