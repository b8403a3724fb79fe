// ABOUTME: Drawing capture package for hand-drawn waveforms
// ABOUTME: Accumulates pointer samples under a strictly increasing x rule
// Package sketch turns raw pointer-drag events into a Drawing.
//
// A Sampler only admits a point while a drag gesture is active and only when
// its x coordinate lies to the right of every point admitted so far. Points
// that move backwards, repeat a column, or fall outside the canvas are dropped
// without error.
//
// Example:
//
//	s := sketch.NewSampler(441, 400)
//	s.BeginDrag()
//	s.Admit(5, 10)  // true
//	s.Admit(3, 20)  // false, 3 <= MaxX
//	s.EndDrag()
//	d := s.Drawing()
package sketch
