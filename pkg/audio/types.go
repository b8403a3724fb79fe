// ABOUTME: Audio type definitions
// ABOUTME: Defines output formats, rendered signals and sample conversion
package audio

import (
	"math"
	"time"
)

const (
	// 16-bit output range
	MaxInt16 = 32767
	MinInt16 = -32768

	// MaxAmplitude bounds a float sample on either side of zero
	MaxAmplitude = 1.0
)

// Format describes the PCM layout handed to an output device
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int // 16 = signed int16 LE, 32 = float32 LE
}

// Signal is a finished, fixed-length buffer of float samples, one slice per channel
type Signal struct {
	Format  Format
	Samples [][]float64
}

// NewSignal allocates a silent signal with the given number of frames per channel
func NewSignal(format Format, frames int) *Signal {
	if frames < 0 {
		frames = 0
	}
	samples := make([][]float64, format.Channels)
	for ch := range samples {
		samples[ch] = make([]float64, frames)
	}
	return &Signal{
		Format:  format,
		Samples: samples,
	}
}

// Frames returns the number of samples per channel
func (s *Signal) Frames() int {
	if s == nil || len(s.Samples) == 0 {
		return 0
	}
	return len(s.Samples[0])
}

// Duration returns the playback length of the signal
func (s *Signal) Duration() time.Duration {
	if s == nil || s.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(s.Frames()) * time.Second / time.Duration(s.Format.SampleRate)
}

// Interleave returns frame-major samples (L R L R ...)
func (s *Signal) Interleave() []float64 {
	frames := s.Frames()
	channels := len(s.Samples)
	out := make([]float64, frames*channels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[i*channels+ch] = s.Samples[ch][i]
		}
	}
	return out
}

// Clamp limits a float sample to [-1, 1]
func Clamp(sample float64) float64 {
	if sample > MaxAmplitude {
		return MaxAmplitude
	}
	if sample < -MaxAmplitude {
		return -MaxAmplitude
	}
	return sample
}

// SampleToInt16 converts a float sample to 16-bit, clipping out-of-range values
func SampleToInt16(sample float64) int16 {
	return int16(math.Round(Clamp(sample) * MaxInt16))
}

// SampleFromInt16 converts a 16-bit sample back to float
func SampleFromInt16(sample int16) float64 {
	if sample == MinInt16 {
		return -MaxAmplitude
	}
	return float64(sample) / MaxInt16
}
