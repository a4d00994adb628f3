// Package desktop holds the window-system independent half of the desktop frontend
package desktop

import (
	"sync/atomic"

	"github.com/lixenwraith/tapgrid/engine"
)

// FrameSink is the engine.Renderer for the desktop: the loop publishes, the GL thread consumes
type FrameSink struct {
	latest atomic.Pointer[engine.Frame]
	seq    atomic.Uint64
}

// Draw implements engine.Renderer
func (s *FrameSink) Draw(f engine.Frame) {
	s.latest.Store(&f)
	s.seq.Add(1)
}

// Latest returns the most recent frame, nil before the first Draw
func (s *FrameSink) Latest() *engine.Frame {
	return s.latest.Load()
}

// Seq returns the number of frames published
func (s *FrameSink) Seq() uint64 {
	return s.seq.Load()
}
