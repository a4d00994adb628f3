package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tapgrid/core"
)

// Stepper runs one atomic update+draw pass
type Stepper interface {
	Step(now time.Time)
}

// StepperFunc adapts a function to the Stepper interface
type StepperFunc func(now time.Time)

// Step calls f(now)
func (f StepperFunc) Step(now time.Time) { f(now) }

// RenderLoop drives a Stepper on a fixed tick from a dedicated goroutine
// Deadlines advance by the interval each tick so the cadence does not drift
type RenderLoop struct {
	stepper  Stepper
	clock    TimeProvider
	interval time.Duration

	mu           sync.Mutex
	nextDeadline time.Time // Real time of the next step

	frames atomic.Uint64

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewRenderLoop creates a loop stepping every interval, timestamps come from clock
func NewRenderLoop(stepper Stepper, clock TimeProvider, interval time.Duration) *RenderLoop {
	if interval <= 0 {
		panic("engine: render loop interval must be positive")
	}
	return &RenderLoop{
		stepper:  stepper,
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the loop goroutine, a stopped loop stays stopped
func (rl *RenderLoop) Start() {
	select {
	case <-rl.stopChan:
		return
	default:
	}
	if rl.running.CompareAndSwap(false, true) {
		rl.wg.Add(1)
		core.Go(rl.loop)
	}
}

// Stop clears the running flag and blocks until the loop goroutine has exited
// No step runs after Stop returns
func (rl *RenderLoop) Stop() {
	rl.stopOnce.Do(func() {
		rl.running.Store(false)
		close(rl.stopChan)
		rl.wg.Wait()
	})
}

// IsRunning reports whether the loop is between Start and Stop
func (rl *RenderLoop) IsRunning() bool {
	return rl.running.Load()
}

// Frames returns the number of completed steps
func (rl *RenderLoop) Frames() uint64 {
	return rl.frames.Load()
}

// Interval returns the configured tick interval
func (rl *RenderLoop) Interval() time.Duration {
	return rl.interval
}

func (rl *RenderLoop) loop() {
	defer rl.wg.Done()

	rl.mu.Lock()
	rl.nextDeadline = time.Now()
	rl.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-rl.stopChan:
			return
		default:
		}

		if !rl.running.Load() {
			return
		}

		rl.stepper.Step(rl.clock.Now())
		rl.frames.Add(1)

		rl.mu.Lock()
		rl.nextDeadline = rl.nextDeadline.Add(rl.interval)
		realNow := time.Now()
		// Too far behind: resync instead of bursting to catch up
		if realNow.Sub(rl.nextDeadline) > rl.interval*2 {
			rl.nextDeadline = realNow.Add(rl.interval)
		}
		sleep := rl.nextDeadline.Sub(realNow)
		rl.mu.Unlock()

		if sleep <= 0 {
			continue
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-rl.stopChan:
			return
		}
	}
}
