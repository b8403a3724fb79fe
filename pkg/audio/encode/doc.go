// ABOUTME: Audio encoder package for turning float samples into PCM bytes
// ABOUTME: Provides Encoder interface and the PCM implementation
// Package encode provides PCM encoders for audio output devices.
//
// Supports: signed 16-bit little-endian and 32-bit float little-endian.
//
// All encoders accept interleaved float samples in [-1, 1]; values outside
// that range are clipped.
//
// Example:
//
//	encoder, err := encode.NewPCM(format)
//	data, err := encoder.Encode(sig.Interleave())
package encode
