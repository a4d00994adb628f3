package constants

import "time"

// Game Loop Timing
const (
	// TickInterval is the fixed update/draw cadence of the render loop (50 Hz)
	TickInterval = 20 * time.Millisecond

	// StartDelay is the idle time between session setup and the first countdown step
	StartDelay = 1250 * time.Millisecond

	// CountdownStep is the interval between countdown values
	CountdownStep = time.Second

	// CountdownFrom is the first value shown by the countdown
	CountdownFrom = 3
)

// Grid Geometry
const (
	// GridSize is the number of dots per row and per column
	GridSize = 5

	// DotCount is the number of dots in one game
	DotCount = GridSize * GridSize
)
