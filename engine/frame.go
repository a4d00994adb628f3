package engine

import "github.com/lixenwraith/tapgrid/layout"

// DotView is the per-dot data a frontend needs to draw one frame
type DotView struct {
	X, Y     int
	Visual   DotVisual
	Sequence int
}

// Frame is an immutable snapshot handed to the Renderer once per render pass
// Dots are ordered by sequence number; every frame owns a fresh slice
type Frame struct {
	Phase GamePhase
	Label string
	Dots  []DotView

	Width, Height int
	DotRadius     int
	Tolerance     int
	LabelAnchor   layout.Point

	// Results is set once the phase is Finished
	Results *Results
}

// Renderer draws a frame, called from the render loop while the session lock is held
// Implementations must not call back into the Session
type Renderer interface {
	Draw(frame Frame)
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(frame Frame)

// Draw calls f(frame)
func (f RendererFunc) Draw(frame Frame) { f(frame) }

// PulseKind identifies which game event triggered a feedback pulse
type PulseKind uint8

const (
	PulseCountdown PulseKind = iota // Each countdown value
	PulseHit                        // A dot was tapped in order
	PulseComplete                   // The last dot was tapped
)

// String returns the string representation of PulseKind
func (k PulseKind) String() string {
	switch k {
	case PulseCountdown:
		return "Countdown"
	case PulseHit:
		return "Hit"
	case PulseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Feedback receives haptic-style pulses, implementations must return without blocking
type Feedback interface {
	Pulse(kind PulseKind)
}

// FeedbackFunc adapts a function to the Feedback interface
type FeedbackFunc func(kind PulseKind)

// Pulse calls f(kind)
func (f FeedbackFunc) Pulse(kind PulseKind) { f(kind) }

type nopFeedback struct{}

func (nopFeedback) Pulse(PulseKind) {}
