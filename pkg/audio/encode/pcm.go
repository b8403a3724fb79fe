// ABOUTME: PCM audio encoder
// ABOUTME: Encodes float samples to 16-bit integer or 32-bit float PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Resonate-Protocol/sketchwave/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct {
	bitDepth int
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if format.BitDepth != 16 && format.BitDepth != 32 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 32)", format.BitDepth)
	}

	return &PCMEncoder{
		bitDepth: format.BitDepth,
	}, nil
}

// Encode converts interleaved float samples to PCM bytes
func (e *PCMEncoder) Encode(samples []float64) ([]byte, error) {
	if e.bitDepth == 32 {
		// 32-bit float: 4 bytes per sample
		output := make([]byte, len(samples)*4)
		for i, sample := range samples {
			binary.LittleEndian.PutUint32(output[i*4:], math.Float32bits(float32(audio.Clamp(sample))))
		}
		return output, nil
	}

	// 16-bit PCM: 2 bytes per sample
	output := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(audio.SampleToInt16(sample)))
	}
	return output, nil
}

// BytesPerSample returns the encoded width of a single sample
func (e *PCMEncoder) BytesPerSample() int {
	return e.bitDepth / 8
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
