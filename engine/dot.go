package engine

import "time"

// DotVisual is the display state of one dot
type DotVisual uint8

const (
	DotInactive DotVisual = iota // Not yet reached, drawn grey
	DotCurrent                   // The dot the player must tap next
	DotTapped                    // Already tapped
)

// String returns the string representation of DotVisual
func (v DotVisual) String() string {
	switch v {
	case DotInactive:
		return "Inactive"
	case DotCurrent:
		return "Current"
	case DotTapped:
		return "Tapped"
	default:
		return "Unknown"
	}
}

// Dot is one grid position in the tap sequence
type Dot struct {
	Sequence int // 1-based position in the tap order
	X, Y     int // Screen coordinates of the center, fixed at setup
	Cell     int // Row-major grid cell index
	Visual   DotVisual

	// TapLatency is measured from the stopwatch start, zero until tapped
	TapLatency time.Duration
}

// TapLatencyMs returns the tap latency in whole milliseconds
func (d Dot) TapLatencyMs() int64 {
	return d.TapLatency.Milliseconds()
}
