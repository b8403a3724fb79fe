// ABOUTME: Drawing-to-signal resampling package using linear interpolation
// ABOUTME: Converts canvas points into a uniformly sampled audio buffer
// Package resample turns a sketch.Drawing into an audio.Signal.
//
// Every canvas column stands for DownsampleRatio audio samples. Consecutive
// points are joined by straight lines and the samples between them are filled
// in; the result is clamped to [-1, 1] and copied onto every channel.
//
// Example:
//
//	r, err := resample.New(resample.Params{
//	    SampleRate:      44100,
//	    Channels:        2,
//	    BitDepth:        16,
//	    DownsampleRatio: 100,
//	    DurationSeconds: 1,
//	    CanvasHeight:    400,
//	})
//	sig := r.Resample(drawing)
package resample
