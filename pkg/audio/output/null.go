// ABOUTME: Silent audio output
// ABOUTME: Completes each buffer after its real-time duration without a device
package output

import (
	"fmt"
	"time"

	"github.com/Resonate-Protocol/sketchwave/pkg/audio"
)

// Null discards audio but keeps playback timing
type Null struct {
	format audio.Format
	ready  bool
}

// NewNull creates an output that needs no audio device
func NewNull() Output {
	return &Null{}
}

// Open records the format used to time buffers
func (n *Null) Open(format audio.Format) error {
	if format.SampleRate <= 0 || format.Channels <= 0 || format.BitDepth <= 0 {
		return fmt.Errorf("invalid format: %dHz %dch %d-bit", format.SampleRate, format.Channels, format.BitDepth)
	}
	n.format = format
	n.ready = true
	return nil
}

// Start finishes the returned playback after the buffer's duration
func (n *Null) Start(pcm []byte) (Playback, error) {
	if !n.ready {
		return nil, fmt.Errorf("output not initialized")
	}

	var timer *time.Timer
	pb := newPlayback(func() {
		timer.Stop()
	})
	timer = time.AfterFunc(n.duration(len(pcm)), pb.finish)

	return pb, nil
}

// Close releases output resources
func (n *Null) Close() error {
	n.ready = false
	return nil
}

func (n *Null) duration(size int) time.Duration {
	bytesPerFrame := n.format.Channels * n.format.BitDepth / 8
	frames := size / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(n.format.SampleRate)
}
