// ABOUTME: Shared playback handle for output backends
// ABOUTME: Closes the done channel exactly once on finish or stop
package output

import "sync"

type playback struct {
	done chan struct{}
	once sync.Once
	halt func()
}

func newPlayback(halt func()) *playback {
	return &playback{
		done: make(chan struct{}),
		halt: halt,
	}
}

func (p *playback) Done() <-chan struct{} {
	return p.done
}

func (p *playback) Stop() {
	p.once.Do(func() {
		if p.halt != nil {
			p.halt()
		}
		close(p.done)
	})
}

// finish marks natural completion without halting the backend
func (p *playback) finish() {
	p.once.Do(func() {
		close(p.done)
	})
}
