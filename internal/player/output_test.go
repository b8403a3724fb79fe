// ABOUTME: Tests for signal playback
// ABOUTME: Tests volume control, sessions and device errors
package player

import (
	"errors"
	"testing"
	"time"

	"github.com/Resonate-Protocol/sketchwave/pkg/audio"
	"github.com/Resonate-Protocol/sketchwave/pkg/audio/output"
)

func TestVolumeMultiplier(t *testing.T) {
	tests := []struct {
		volume   int
		muted    bool
		expected float64
	}{
		{100, false, 1.0},
		{50, false, 0.5},
		{0, false, 0.0},
		{80, true, 0.0}, // Muted overrides volume
	}

	for _, tt := range tests {
		result := getVolumeMultiplier(tt.volume, tt.muted)
		if result != tt.expected {
			t.Errorf("volume=%d, muted=%v: expected %f, got %f",
				tt.volume, tt.muted, tt.expected, result)
		}
	}
}

func TestApplyVolume(t *testing.T) {
	samples := []float64{1, -1, 0.5, -0.5}

	result := applyVolume(samples, 50, false)

	if result[0] != 0.5 {
		t.Errorf("expected 0.5, got %f", result[0])
	}
	if result[1] != -0.5 {
		t.Errorf("expected -0.5, got %f", result[1])
	}
	if samples[0] != 1 {
		t.Error("applyVolume modified its input")
	}
}

func TestSetVolumeClamps(t *testing.T) {
	o := NewOutput(output.NewNull())

	o.SetVolume(150)
	if o.GetVolume() != 100 {
		t.Errorf("expected volume 100, got %d", o.GetVolume())
	}

	o.SetVolume(-5)
	if o.GetVolume() != 0 {
		t.Errorf("expected volume 0, got %d", o.GetVolume())
	}

	o.SetMuted(true)
	if !o.IsMuted() {
		t.Error("expected muted")
	}
}

func TestPlaySession(t *testing.T) {
	o := NewOutput(output.NewNull())
	defer o.Close()

	sig := audio.NewSignal(audio.Format{SampleRate: 1000, Channels: 2, BitDepth: 16}, 20)

	session, err := o.Play(sig)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if session.ID == "" {
		t.Error("expected session ID")
	}
	if session.Signal != sig {
		t.Error("expected session to carry its signal")
	}

	select {
	case <-session.Done():
	case <-time.After(time.Second):
		t.Fatal("session did not finish")
	}
}

func TestPlaySessionsHaveDistinctIDs(t *testing.T) {
	o := NewOutput(output.NewNull())
	defer o.Close()

	sig := audio.NewSignal(audio.Format{SampleRate: 1000, Channels: 1, BitDepth: 16}, 1)

	first, err := o.Play(sig)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	second, err := o.Play(sig)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct session IDs, both were %s", first.ID)
	}
}

func TestPlayNilSignal(t *testing.T) {
	o := NewOutput(output.NewNull())
	if _, err := o.Play(nil); err == nil {
		t.Error("expected error for nil signal")
	}
}

func TestPlayUnsupportedFormat(t *testing.T) {
	o := NewOutput(output.NewNull())
	sig := audio.NewSignal(audio.Format{SampleRate: 44100, Channels: 2, BitDepth: 24}, 10)

	if _, err := o.Play(sig); err == nil {
		t.Error("expected error for 24-bit signal")
	}
}

type failingOutput struct{}

func (failingOutput) Open(audio.Format) error               { return errors.New("no device") }
func (failingOutput) Start([]byte) (output.Playback, error) { return nil, errors.New("no device") }
func (failingOutput) Close() error                          { return nil }

func TestPlayDeviceUnavailable(t *testing.T) {
	o := NewOutput(failingOutput{})
	sig := audio.NewSignal(audio.Format{SampleRate: 44100, Channels: 2, BitDepth: 16}, 10)

	if _, err := o.Play(sig); err == nil {
		t.Error("expected error when the device cannot be opened")
	}
}
