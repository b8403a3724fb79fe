// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Signal types and sample conversion functions
// Package audio provides the types shared by the resampler, encoder and outputs.
//
// This package defines:
//   - Format: describes the PCM layout sent to a device (sample rate, channels, bit depth)
//   - Signal: a finished per-channel float buffer with values in [-1, 1]
//
// It also provides utilities for converting float samples to 16-bit PCM.
//
// Example:
//
//	format := audio.Format{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BitDepth:   16,
//	}
//
//	sig := audio.NewSignal(format, format.SampleRate)
//	pcm := audio.SampleToInt16(sig.Samples[0][0])
package audio
