package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lixenwraith/tapgrid/constants"
	"github.com/lixenwraith/tapgrid/layout"
	"github.com/lixenwraith/tapgrid/pattern"
)

// TapResult reports what a tap did to the game
type TapResult uint8

const (
	TapIgnored  TapResult = iota // Not playing
	TapMissed                    // Outside tolerance of the current dot
	TapHit                       // Current dot tapped, more remain
	TapFinished                  // Last dot tapped
)

// String returns the string representation of TapResult
func (r TapResult) String() string {
	switch r {
	case TapIgnored:
		return "Ignored"
	case TapMissed:
		return "Missed"
	case TapHit:
		return "Hit"
	case TapFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// GameState is one game instance: the dots in tap order, the cursor, the phase and the stopwatch
// It is not safe for concurrent use, Session serializes every access behind its lock
type GameState struct {
	layout  layout.Layout
	pattern []int // pattern[cell] is the sequence number of the dot in that cell

	// dots are ordered by sequence, dots[i].Sequence == i+1
	dots   []Dot
	cursor int

	phase          GamePhase
	phaseStart     time.Time
	stopwatchStart time.Time
	countdown      int

	waitingLabel string
	label        string
	misses       int
}

// NewGameState places the pattern onto the layout cells
// Panics if the pattern is not a permutation matching the cell count
func NewGameState(l layout.Layout, p []int, waitingLabel string) *GameState {
	if len(p) != len(l.Cells) {
		panic(fmt.Sprintf("engine: pattern length %d does not match %d cells", len(p), len(l.Cells)))
	}
	if !pattern.Validate(p) {
		panic(fmt.Sprintf("engine: pattern is not a permutation: %v", p))
	}

	gs := &GameState{
		layout:       l,
		pattern:      append([]int(nil), p...),
		dots:         make([]Dot, len(p)),
		phase:        PhaseWaiting,
		waitingLabel: waitingLabel,
		label:        waitingLabel,
	}
	for cell, seq := range gs.pattern {
		c := l.Cells[cell]
		gs.dots[seq-1] = Dot{
			Sequence: seq,
			X:        c.X,
			Y:        c.Y,
			Cell:     cell,
			Visual:   DotInactive,
		}
	}
	return gs
}

// ===== READ ACCESSORS =====

// Phase returns the current game phase
func (gs *GameState) Phase() GamePhase { return gs.phase }

// Cursor returns the index of the next expected dot
func (gs *GameState) Cursor() int { return gs.cursor }

// Countdown returns the current countdown value
func (gs *GameState) Countdown() int { return gs.countdown }

// Label returns the cached display label from the last Tick
func (gs *GameState) Label() string { return gs.label }

// Misses returns the number of taps that landed away from the current dot
func (gs *GameState) Misses() int { return gs.misses }

// Layout returns the geometry the dots were placed with
func (gs *GameState) Layout() layout.Layout { return gs.layout }

// Pattern returns a copy of the tap order by cell
func (gs *GameState) Pattern() []int { return append([]int(nil), gs.pattern...) }

// Dots returns a copy of all dots ordered by sequence
func (gs *GameState) Dots() []Dot { return append([]Dot(nil), gs.dots...) }

// Dot returns the dot at sequence index i (0-based)
func (gs *GameState) Dot(i int) Dot { return gs.dots[i] }

// PhaseDuration returns how long the current phase has been active
func (gs *GameState) PhaseDuration(now time.Time) time.Duration { return now.Sub(gs.phaseStart) }

// FinalTime returns the completion time, zero until Finished
func (gs *GameState) FinalTime() time.Duration {
	if gs.phase != PhaseFinished {
		return 0
	}
	return gs.dots[len(gs.dots)-1].TapLatency
}

// ===== PHASE TRANSITIONS =====

func (gs *GameState) transition(to GamePhase, now time.Time) bool {
	if !CanTransition(gs.phase, to) {
		return false
	}
	gs.phase = to
	gs.phaseStart = now
	return true
}

// BeginCountdown moves Waiting -> Countdown starting at from
func (gs *GameState) BeginCountdown(from int, now time.Time) bool {
	if from < 1 || !gs.transition(PhaseCountdown, now) {
		return false
	}
	gs.countdown = from
	gs.label = strconv.Itoa(from)
	return true
}

// StepCountdown decrements the countdown, starting the game when it reaches zero
// Returns true while the countdown is still running after the step
func (gs *GameState) StepCountdown(now time.Time) bool {
	if gs.phase != PhaseCountdown {
		return false
	}
	gs.countdown--
	if gs.countdown > 0 {
		gs.label = strconv.Itoa(gs.countdown)
		return true
	}
	gs.countdown = 0
	gs.startPlaying(now)
	return false
}

// startPlaying starts the stopwatch and highlights the first dot
func (gs *GameState) startPlaying(now time.Time) {
	if !gs.transition(PhasePlaying, now) {
		panic(fmt.Sprintf("engine: cannot start playing from %s", gs.phase))
	}
	gs.stopwatchStart = now
	gs.cursor = 0
	gs.dots[0].Visual = DotCurrent
}

// ===== INPUT =====

// HandleTap tests (x, y) against the current dot and advances the cursor on a hit
// Taps outside Playing or outside tolerance leave the dots, cursor and phase untouched
func (gs *GameState) HandleTap(x, y int, now time.Time) TapResult {
	if gs.phase != PhasePlaying {
		return TapIgnored
	}
	if gs.cursor < 0 || gs.cursor >= len(gs.dots) {
		panic(fmt.Sprintf("engine: cursor %d out of range while playing", gs.cursor))
	}

	cur := &gs.dots[gs.cursor]
	if !gs.layout.Hit(x, y, layout.Point{X: cur.X, Y: cur.Y}) {
		gs.misses++
		return TapMissed
	}

	latency := now.Sub(gs.stopwatchStart)
	// Clamp so latencies never step backwards on a coarse clock
	if gs.cursor > 0 {
		latency = max(latency, gs.dots[gs.cursor-1].TapLatency)
	}
	cur.TapLatency = max(latency, 0)
	cur.Visual = DotTapped
	gs.cursor++

	if gs.cursor == len(gs.dots) {
		gs.transition(PhaseFinished, now)
		gs.label = formatSeconds(gs.FinalTime())
		return TapFinished
	}
	gs.dots[gs.cursor].Visual = DotCurrent
	return TapHit
}

// ===== READ-SIDE TICK =====

// Tick recomputes the display label for now
// Only the label cache changes, repeated calls with the same now yield the same label
func (gs *GameState) Tick(now time.Time) string {
	switch gs.phase {
	case PhaseWaiting:
		gs.label = gs.waitingLabel
	case PhaseCountdown:
		gs.label = strconv.Itoa(gs.countdown)
	case PhasePlaying:
		gs.label = formatSeconds(max(now.Sub(gs.stopwatchStart), 0))
	case PhaseFinished:
		gs.label = formatSeconds(gs.FinalTime())
	}
	return gs.label
}

// Frame snapshots the state for one render pass
func (gs *GameState) Frame() Frame {
	f := Frame{
		Phase:       gs.phase,
		Label:       gs.label,
		Dots:        make([]DotView, len(gs.dots)),
		Width:       gs.layout.Width,
		Height:      gs.layout.Height,
		DotRadius:   gs.layout.DotRadius,
		Tolerance:   gs.layout.Tolerance,
		LabelAnchor: gs.layout.LabelAnchor,
	}
	for i, d := range gs.dots {
		f.Dots[i] = DotView{X: d.X, Y: d.Y, Visual: d.Visual, Sequence: d.Sequence}
	}
	if gs.phase == PhaseFinished {
		f.Results = gs.Results()
	}
	return f
}

// Results returns the summary of a finished game, nil before that
func (gs *GameState) Results() *Results {
	if gs.phase != PhaseFinished {
		return nil
	}
	return computeResults(gs.dots, gs.misses)
}

// formatSeconds renders a duration as seconds with millisecond precision
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', constants.TimeLabelPrecision, 64)
}
