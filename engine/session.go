package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tapgrid/constants"
	"github.com/lixenwraith/tapgrid/layout"
	"github.com/lixenwraith/tapgrid/pattern"
	"github.com/lixenwraith/tapgrid/status"
)

// SessionConfig holds the timing and geometry of a session
type SessionConfig struct {
	GridSize      int
	TickInterval  time.Duration
	StartDelay    time.Duration // Setup -> first countdown value
	CountdownStep time.Duration
	CountdownFrom int
	WaitingLabel  string
}

// DefaultSessionConfig returns the reference timings
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		GridSize:      constants.GridSize,
		TickInterval:  constants.TickInterval,
		StartDelay:    constants.StartDelay,
		CountdownStep: constants.CountdownStep,
		CountdownFrom: constants.CountdownFrom,
		WaitingLabel:  constants.WaitingLabel,
	}
}

// SessionOption customizes a Session at construction
type SessionOption func(*Session)

// WithClock replaces the monotonic clock
func WithClock(clock TimeProvider) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// WithFeedback sets the receiver of feedback pulses
func WithFeedback(fb Feedback) SessionOption {
	return func(s *Session) {
		if fb != nil {
			s.feedback = fb
		}
	}
}

// WithPatternSource replaces the shuffle, used for deterministic games
func WithPatternSource(gen func(n int) []int) SessionOption {
	return func(s *Session) { s.newPattern = gen }
}

// WithMetrics publishes session counters into reg
func WithMetrics(reg *status.Registry) SessionOption {
	return func(s *Session) {
		if reg != nil {
			s.metrics = reg
		}
	}
}

// Session owns one game at a time plus the loop that drives it
// A single mutex serializes taps against the update+draw pass
type Session struct {
	mu sync.Mutex

	cfg        SessionConfig
	clock      TimeProvider
	renderer   Renderer
	feedback   Feedback
	newPattern func(n int) []int

	width, height int
	state         *GameState
	nextEventAt   time.Time // Deadline of the next scheduled phase event
	loop          *RenderLoop
	paused        bool

	// Cached metric pointers
	metrics    *status.Registry
	statFrames *atomic.Int64
	statHits   *atomic.Int64
	statMisses *atomic.Int64
	statGames  *atomic.Int64
	statPhase  *status.AtomicString
}

// NewSession creates a session drawing into renderer, InitSession must be called before use
func NewSession(cfg SessionConfig, renderer Renderer, opts ...SessionOption) *Session {
	if renderer == nil {
		renderer = RendererFunc(func(Frame) {})
	}
	s := &Session{
		cfg:        cfg,
		clock:      NewMonotonicTimeProvider(),
		renderer:   renderer,
		feedback:   nopFeedback{},
		newPattern: pattern.Generate,
		metrics:    status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.statFrames = s.metrics.Ints.Get("loop.frames")
	s.statHits = s.metrics.Ints.Get("tap.hits")
	s.statMisses = s.metrics.Ints.Get("tap.misses")
	s.statGames = s.metrics.Ints.Get("session.games")
	s.statPhase = s.metrics.Strings.Get("session.phase")
	return s
}

// InitSession creates a fresh game for the given screen size
// The countdown is scheduled StartDelay after this call
func (s *Session) InitSession(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked(width, height)
}

func (s *Session) initLocked(width, height int) {
	s.width, s.height = width, height

	l := layout.Compute(width, height, s.cfg.GridSize)
	p := s.newPattern(len(l.Cells))
	s.state = NewGameState(l, p, s.cfg.WaitingLabel)
	s.nextEventAt = s.clock.Now().Add(s.cfg.StartDelay)

	s.statGames.Add(1)
	s.statPhase.Store(s.state.Phase().String())
	log.Printf("session: init %dx%d, spacing=%d radius=%d tolerance=%d",
		width, height, l.Spacing, l.DotRadius, l.Tolerance)
}

// HandleTap forwards a pointer-down at (x, y) to the current game
func (s *Session) HandleTap(x, y int) TapResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return TapIgnored
	}

	res := s.state.HandleTap(x, y, s.clock.Now())
	switch res {
	case TapMissed:
		s.statMisses.Add(1)
	case TapHit:
		s.statHits.Add(1)
		s.feedback.Pulse(PulseHit)
	case TapFinished:
		s.statHits.Add(1)
		s.statPhase.Store(s.state.Phase().String())
		s.feedback.Pulse(PulseComplete)
		log.Printf("session: finished in %s with %d misses", s.state.FinalTime(), s.state.Misses())
	}
	return res
}

// Tick recomputes the display label for now without advancing the schedule
func (s *Session) Tick(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ""
	}
	return s.state.Tick(now)
}

// Step is one render pass: advance scheduled phase events, tick, draw
func (s *Session) Step(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return
	}
	s.advanceLocked(now)
	s.state.Tick(now)
	s.renderer.Draw(s.state.Frame())
	s.statFrames.Add(1)
}

// advanceLocked fires the waiting delay and countdown steps whose deadline has passed
func (s *Session) advanceLocked(now time.Time) {
	gs := s.state
	switch gs.Phase() {
	case PhaseWaiting:
		if now.Before(s.nextEventAt) {
			return
		}
		if gs.BeginCountdown(s.cfg.CountdownFrom, now) {
			s.feedback.Pulse(PulseCountdown)
			s.nextEventAt = s.nextEventAt.Add(s.cfg.CountdownStep)
			log.Printf("session: countdown from %d", s.cfg.CountdownFrom)
		}

	case PhaseCountdown:
		if now.Before(s.nextEventAt) {
			return
		}
		if gs.StepCountdown(now) {
			s.feedback.Pulse(PulseCountdown)
			s.nextEventAt = s.nextEventAt.Add(s.cfg.CountdownStep)
		} else {
			log.Printf("session: playing")
		}
	}
	s.statPhase.Store(gs.Phase().String())
}

// SetRunning starts or stops the render loop
// Stopping blocks until the loop has exited
func (s *Session) SetRunning(running bool) {
	if running {
		s.mu.Lock()
		if s.loop == nil {
			s.loop = NewRenderLoop(s, s.clock, s.cfg.TickInterval)
			s.loop.Start()
		}
		s.mu.Unlock()
		return
	}

	// The loop needs the session lock to finish its step, so join outside of it
	s.mu.Lock()
	loop := s.loop
	s.loop = nil
	s.mu.Unlock()
	if loop != nil {
		loop.Stop()
	}
}

// IsRunning reports whether a render loop is active
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loop != nil && s.loop.IsRunning()
}

// Pause stops the loop, the current game is discarded on Resume
func (s *Session) Pause() {
	s.SetRunning(false)

	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
	log.Printf("session: paused")
}

// Resume starts a brand-new game with a fresh pattern and a new loop
func (s *Session) Resume() {
	s.mu.Lock()
	if !s.paused {
		s.mu.Unlock()
		return
	}
	s.paused = false
	s.initLocked(s.width, s.height)
	s.mu.Unlock()

	s.SetRunning(true)
	log.Printf("session: resumed")
}

// IsPaused reports whether Pause was called without a matching Resume
func (s *Session) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Restart replaces the game at the given size
// A running or paused session plays the new game, a stopped one stays stopped
func (s *Session) Restart(width, height int) {
	wasRunning := s.IsRunning() || s.IsPaused()
	s.SetRunning(false)

	s.mu.Lock()
	s.paused = false
	s.initLocked(width, height)
	s.mu.Unlock()

	if wasRunning {
		s.SetRunning(true)
	}
}

// Inspect runs fn with exclusive access to the current game state
func (s *Session) Inspect(fn func(gs *GameState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != nil {
		fn(s.state)
	}
}

// Frame returns a snapshot of the current game, the zero Frame before InitSession
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return Frame{}
	}
	return s.state.Frame()
}

// Metrics returns the registry holding the session counters
func (s *Session) Metrics() *status.Registry {
	return s.metrics
}

// Size returns the screen size of the current game
func (s *Session) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}
