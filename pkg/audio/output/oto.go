// ABOUTME: Oto-based audio output implementation
// ABOUTME: Plays complete PCM buffers and reports when they finish
package output

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/Resonate-Protocol/sketchwave/pkg/audio"
	"github.com/ebitengine/oto/v3"
)

// pollInterval is how often a running player is checked for completion
const pollInterval = 10 * time.Millisecond

// Oto output implementation using oto library
type Oto struct {
	otoCtx *oto.Context
	format audio.Format
	ready  bool
}

// NewOto creates a new Oto output
func NewOto() Output {
	return &Oto{}
}

// Open initializes the output device
func (o *Oto) Open(format audio.Format) error {
	// If already initialized with same format, reuse the existing context
	if o.otoCtx != nil && o.format == format {
		o.ready = true
		return nil
	}

	// oto only allows one context per process
	if o.otoCtx != nil {
		return fmt.Errorf("format change (%dHz %dch -> %dHz %dch) requires a new process",
			o.format.SampleRate, o.format.Channels, format.SampleRate, format.Channels)
	}

	sampleFormat, err := otoFormat(format.BitDepth)
	if err != nil {
		return err
	}

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       sampleFormat,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.format = format
	o.ready = true

	log.Printf("Audio output initialized: %dHz, %d channels, %d-bit", format.SampleRate, format.Channels, format.BitDepth)

	return nil
}

// Start plays pcm on a fresh player
func (o *Oto) Start(pcm []byte) (Playback, error) {
	if !o.ready {
		return nil, fmt.Errorf("output not initialized")
	}

	if err := o.otoCtx.Resume(); err != nil {
		return nil, fmt.Errorf("failed to resume oto context: %w", err)
	}

	player := o.otoCtx.NewPlayer(bytes.NewReader(pcm))
	pb := newPlayback(func() {
		player.Pause()
	})
	player.Play()

	go watchPlayer(player, pb)

	return pb, nil
}

// watchPlayer closes the playback once the player drains or is stopped
func watchPlayer(player *oto.Player, pb *playback) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	defer func() {
		if err := player.Close(); err != nil {
			log.Printf("Error closing player: %v", err)
		}
	}()

	for {
		select {
		case <-pb.Done():
			return
		case <-ticker.C:
			if !player.IsPlaying() {
				pb.finish()
				return
			}
		}
	}
}

// Close releases output resources
func (o *Oto) Close() error {
	if o.otoCtx != nil && o.ready {
		o.ready = false
		if err := o.otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
	}
	return nil
}

func otoFormat(bitDepth int) (oto.Format, error) {
	switch bitDepth {
	case 16:
		return oto.FormatSignedInt16LE, nil
	case 32:
		return oto.FormatFloat32LE, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth for oto: %d", bitDepth)
	}
}
