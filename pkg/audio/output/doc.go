// ABOUTME: Audio output package for playing complete buffers
// ABOUTME: Provides Output interface with oto and null implementations
// Package output provides audio playback interfaces.
//
// Supports oto for cross-platform audio output, and a Null output that keeps
// real-time pacing without opening a device.
//
// Example:
//
//	out := output.NewOto()
//	err := out.Open(audio.Format{SampleRate: 44100, Channels: 2, BitDepth: 16})
//	pb, err := out.Start(pcm)
//	<-pb.Done()
package output
