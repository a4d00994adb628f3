package engine

// GamePhase is the coarse state of a game
type GamePhase uint8

const (
	PhaseWaiting   GamePhase = iota // Dots shown grey, placeholder label
	PhaseCountdown                  // 3, 2, 1
	PhasePlaying                    // Stopwatch running, taps accepted
	PhaseFinished                   // Time frozen, input ignored
)

// String returns the string representation of GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhaseCountdown:
		return "Countdown"
	case PhasePlaying:
		return "Playing"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// validTransitions is the one-directional phase graph
var validTransitions = map[GamePhase]GamePhase{
	PhaseWaiting:   PhaseCountdown,
	PhaseCountdown: PhasePlaying,
	PhasePlaying:   PhaseFinished,
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	next, ok := validTransitions[from]
	return ok && next == to
}
