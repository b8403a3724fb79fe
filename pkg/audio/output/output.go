// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for one-shot buffer playback backends
package output

import "github.com/Resonate-Protocol/sketchwave/pkg/audio"

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(format audio.Format) error

	// Start begins playing a complete PCM buffer and returns immediately
	Start(pcm []byte) (Playback, error)

	// Close releases output resources
	Close() error
}

// Playback is one buffer in flight on an Output
type Playback interface {
	// Done is closed when playback ends, naturally or through Stop
	Done() <-chan struct{}

	// Stop halts playback; it is safe to call more than once
	Stop()
}
