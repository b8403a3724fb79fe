// ABOUTME: Piecewise-linear resampler for hand-drawn waveforms
// ABOUTME: Converts sparse canvas points into a dense, fixed-length signal
package resample

import (
	"fmt"

	"github.com/Resonate-Protocol/sketchwave/pkg/audio"
	"github.com/Resonate-Protocol/sketchwave/pkg/sketch"
)

// Params fixes the geometry binding canvas pixels to audio samples
type Params struct {
	SampleRate      int
	Channels        int
	BitDepth        int
	DownsampleRatio int // audio samples per canvas column
	DurationSeconds int
	CanvasHeight    int
}

// CanvasWidth returns the number of canvas columns covered by one second of audio
func (p Params) CanvasWidth() int {
	if p.DownsampleRatio <= 0 {
		return 0
	}
	return p.SampleRate / p.DownsampleRatio
}

// Frames returns the signal length per channel
func (p Params) Frames() int {
	return p.SampleRate * p.DurationSeconds
}

// Format returns the output format of signals built with these params
func (p Params) Format() audio.Format {
	return audio.Format{
		SampleRate: p.SampleRate,
		Channels:   p.Channels,
		BitDepth:   p.BitDepth,
	}
}

// Validate checks the params can produce a signal
func (p Params) Validate() error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", p.SampleRate)
	}
	if p.Channels <= 0 {
		return fmt.Errorf("invalid channel count: %d", p.Channels)
	}
	if p.DownsampleRatio <= 0 || p.DownsampleRatio > p.SampleRate {
		return fmt.Errorf("invalid downsample ratio: %d", p.DownsampleRatio)
	}
	if p.DurationSeconds <= 0 {
		return fmt.Errorf("invalid duration: %ds", p.DurationSeconds)
	}
	if p.CanvasHeight <= 0 {
		return fmt.Errorf("invalid canvas height: %d", p.CanvasHeight)
	}
	return nil
}

// Resampler builds signals from drawings. It holds no state between calls.
type Resampler struct {
	params Params
}

// New creates a resampler for the given params
func New(params Params) (*Resampler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Resampler{params: params}, nil
}

// Params returns the resampler geometry
func (r *Resampler) Params() Params {
	return r.params
}

// NormalizeAmplitude maps a canvas row to an amplitude.
// y=0 maps to -1 and y=height maps to -3; downstream audio depends on this exact map.
func (r *Resampler) NormalizeAmplitude(y int) float64 {
	return -2*(float64(y)/float64(r.params.CanvasHeight)) - 1
}

// SampleIndex maps a canvas column to its absolute sample index
func (r *Resampler) SampleIndex(x int) int {
	return x * r.params.DownsampleRatio
}

// Interpolate returns the raw, unclamped mono curve through points.
// Each segment fills the indices strictly between its endpoints; everything
// else, including the endpoints themselves, stays zero.
func (r *Resampler) Interpolate(points []sketch.Point) []float64 {
	frames := r.params.Frames()
	curve := make([]float64, frames)

	for i := 1; i < len(points); i++ {
		idx0 := r.SampleIndex(points[i-1].X)
		amp0 := r.NormalizeAmplitude(points[i-1].Y)
		idx1 := r.SampleIndex(points[i].X)
		amp1 := r.NormalizeAmplitude(points[i].Y)

		// Admission guarantees idx1 > idx0; anything else has no interior.
		if idx1 <= idx0 {
			continue
		}

		slope := (amp1 - amp0) / float64(idx1-idx0)
		for j := 1; j < idx1-idx0; j++ {
			idx := idx0 + j
			if idx < 0 {
				continue
			}
			if idx >= frames {
				break
			}
			curve[idx] = amp0 + slope*float64(j)
		}
	}

	return curve
}

// Resample converts a drawing into a signal clamped to [-1, 1], with the same
// curve on every channel. Drawings with fewer than two points yield silence.
func (r *Resampler) Resample(d sketch.Drawing) *audio.Signal {
	curve := r.Interpolate(d.Points)
	for i, v := range curve {
		curve[i] = audio.Clamp(v)
	}

	sig := audio.NewSignal(r.params.Format(), len(curve))
	for ch := range sig.Samples {
		copy(sig.Samples[ch], curve)
	}
	return sig
}
