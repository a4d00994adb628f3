package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the timeout expires
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestRenderLoopStepsUntilStopped(t *testing.T) {
	var steps atomic.Int64
	clock := NewMockTimeProvider(testEpoch)
	rl := NewRenderLoop(StepperFunc(func(now time.Time) {
		if !now.Equal(testEpoch) {
			t.Errorf("step timestamp %v did not come from the provided clock", now)
		}
		steps.Add(1)
	}), clock, time.Millisecond)

	if rl.IsRunning() {
		t.Fatal("loop running before Start")
	}
	rl.Start()
	if !rl.IsRunning() {
		t.Fatal("loop not running after Start")
	}

	waitFor(t, 2*time.Second, func() bool { return steps.Load() >= 5 })
	rl.Stop()

	if rl.IsRunning() {
		t.Error("loop still running after Stop")
	}

	// Stop joins: no step may land after it returns
	after := steps.Load()
	time.Sleep(20 * time.Millisecond)
	if got := steps.Load(); got != after {
		t.Errorf("steps continued after Stop: %d -> %d", after, got)
	}
	if rl.Frames() != uint64(after) {
		t.Errorf("Frames() = %d, want %d", rl.Frames(), after)
	}
}

func TestRenderLoopStopIdempotent(t *testing.T) {
	rl := NewRenderLoop(StepperFunc(func(time.Time) {}), NewMonotonicTimeProvider(), time.Millisecond)
	rl.Start()
	rl.Stop()
	rl.Stop()

	// A stopped loop cannot be restarted
	rl.Start()
	if rl.IsRunning() {
		t.Error("stopped loop restarted")
	}
}

func TestRenderLoopStopBeforeStart(t *testing.T) {
	rl := NewRenderLoop(StepperFunc(func(time.Time) {}), NewMonotonicTimeProvider(), 20*time.Millisecond)
	done := make(chan struct{})
	go func() {
		rl.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop on an unstarted loop blocked")
	}
}

// TestRenderLoopCadence checks the loop holds roughly its interval
func TestRenderLoopCadence(t *testing.T) {
	var steps atomic.Int64
	interval := 10 * time.Millisecond
	rl := NewRenderLoop(StepperFunc(func(time.Time) { steps.Add(1) }), NewMonotonicTimeProvider(), interval)

	rl.Start()
	time.Sleep(200 * time.Millisecond)
	rl.Stop()

	// 20 expected, generous bounds for loaded machines
	if n := steps.Load(); n < 5 || n > 40 {
		t.Errorf("steps in 200ms at 10ms = %d, want about 20", n)
	}
}

func TestRenderLoopRejectsZeroInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero interval")
		}
	}()
	NewRenderLoop(StepperFunc(func(time.Time) {}), NewMonotonicTimeProvider(), 0)
}
