// ABOUTME: Signal playback on top of an audio output
// ABOUTME: Applies output volume, encodes PCM and hands out playback sessions
package player

import (
	"fmt"
	"log"

	"github.com/Resonate-Protocol/sketchwave/pkg/audio"
	"github.com/Resonate-Protocol/sketchwave/pkg/audio/encode"
	"github.com/Resonate-Protocol/sketchwave/pkg/audio/output"
	"github.com/google/uuid"
)

// Session is one signal being played
type Session struct {
	ID       string
	Signal   *audio.Signal
	playback output.Playback
}

// Done is closed when the session ends for any reason
func (s *Session) Done() <-chan struct{} {
	return s.playback.Done()
}

// Stop halts playback immediately
func (s *Session) Stop() {
	s.playback.Stop()
}

// Output plays finished signals
type Output struct {
	out     output.Output
	encoder encode.Encoder
	format  audio.Format
	volume  int
	muted   bool
	ready   bool
}

// NewOutput creates a player over the given device
func NewOutput(out output.Output) *Output {
	return &Output{
		out:    out,
		volume: 100,
		muted:  false,
	}
}

// Initialize opens the device and encoder for format
func (o *Output) Initialize(format audio.Format) error {
	if o.ready && o.format == format {
		return nil
	}

	encoder, err := encode.NewPCM(format)
	if err != nil {
		return fmt.Errorf("failed to create encoder: %w", err)
	}

	if err := o.out.Open(format); err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	o.encoder = encoder
	o.format = format
	o.ready = true

	return nil
}

// Play starts sig and returns its session
func (o *Output) Play(sig *audio.Signal) (*Session, error) {
	if sig == nil {
		return nil, fmt.Errorf("no signal to play")
	}

	if err := o.Initialize(sig.Format); err != nil {
		return nil, err
	}

	samples := applyVolume(sig.Interleave(), o.volume, o.muted)

	pcm, err := o.encoder.Encode(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to encode signal: %w", err)
	}

	pb, err := o.out.Start(pcm)
	if err != nil {
		return nil, fmt.Errorf("failed to start playback: %w", err)
	}

	session := &Session{
		ID:       uuid.New().String(),
		Signal:   sig,
		playback: pb,
	}

	log.Printf("Playback %s started: %d frames (%v)", session.ID, sig.Frames(), sig.Duration())

	return session, nil
}

// SetVolume sets the volume (0-100)
func (o *Output) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	o.volume = volume
	log.Printf("Volume set to %d", volume)
}

// SetMuted sets mute state
func (o *Output) SetMuted(muted bool) {
	o.muted = muted
	log.Printf("Muted: %v", muted)
}

// GetVolume returns current volume
func (o *Output) GetVolume() int {
	return o.volume
}

// IsMuted returns mute state
func (o *Output) IsMuted() bool {
	return o.muted
}

// Close closes the audio output
func (o *Output) Close() error {
	if !o.ready {
		return nil
	}
	o.ready = false
	if err := o.encoder.Close(); err != nil {
		log.Printf("Error closing encoder: %v", err)
	}
	return o.out.Close()
}

// applyVolume scales a copy of samples; the signal itself is never modified
func applyVolume(samples []float64, volume int, muted bool) []float64 {
	multiplier := getVolumeMultiplier(volume, muted)

	result := make([]float64, len(samples))
	for i, sample := range samples {
		result[i] = sample * multiplier
	}

	return result
}

// getVolumeMultiplier calculates volume multiplier
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}
