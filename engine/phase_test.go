package engine

import "testing"

// TestCanTransition walks the full phase graph
func TestCanTransition(t *testing.T) {
	phases := []GamePhase{PhaseWaiting, PhaseCountdown, PhasePlaying, PhaseFinished}

	valid := map[[2]GamePhase]bool{
		{PhaseWaiting, PhaseCountdown}: true,
		{PhaseCountdown, PhasePlaying}: true,
		{PhasePlaying, PhaseFinished}:  true,
	}

	for _, from := range phases {
		for _, to := range phases {
			want := valid[[2]GamePhase{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestPhaseStrings(t *testing.T) {
	tests := []struct {
		phase GamePhase
		want  string
	}{
		{PhaseWaiting, "Waiting"},
		{PhaseCountdown, "Countdown"},
		{PhasePlaying, "Playing"},
		{PhaseFinished, "Finished"},
		{GamePhase(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("GamePhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if DotCurrent.String() != "Current" || DotVisual(9).String() != "Unknown" {
		t.Errorf("DotVisual strings: %q %q", DotCurrent, DotVisual(9))
	}
	if TapFinished.String() != "Finished" || TapResult(9).String() != "Unknown" {
		t.Errorf("TapResult strings: %q %q", TapFinished, TapResult(9))
	}
	if PulseComplete.String() != "Complete" || PulseKind(9).String() != "Unknown" {
		t.Errorf("PulseKind strings: %q %q", PulseComplete, PulseKind(9))
	}
}

func TestDotTapLatencyMs(t *testing.T) {
	d := Dot{TapLatency: 1234567890}
	if got := d.TapLatencyMs(); got != 1234 {
		t.Errorf("TapLatencyMs = %d, want 1234", got)
	}
}
