package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tapgrid/constants"
	"github.com/lixenwraith/tapgrid/engine"
)

// SoundManager plays synthesized feedback through the speaker
// Every method is safe to call before Initialize or after a failed one
type SoundManager struct {
	mu          sync.Mutex
	settings    Settings
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a sound manager, Initialize opens the device
func NewSoundManager(settings Settings) *SoundManager {
	if settings.SampleRate <= 0 {
		settings.SampleRate = constants.AudioSampleRate
	}
	return &SoundManager{
		settings: settings,
		mixer:    &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.settings.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.settings.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sm.settings.SampleRate)
	return nil
}

// Cleanup silences pending sounds, the speaker itself stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues sound t on the mixer
func (sm *SoundManager) Play(t SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	s := SoundEffect(t, sm.settings)
	if s == nil {
		return fmt.Errorf("audio: unknown sound type %d", t)
	}

	// The mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[t]++
	return nil
}

// Played returns how many times t has been queued
func (sm *SoundManager) Played(t SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if t < 0 || t >= soundTypeCount {
		return 0
	}
	return sm.played[t]
}

// Pulse implements engine.Feedback
func (sm *SoundManager) Pulse(kind engine.PulseKind) {
	if err := sm.Play(SoundFor(kind)); err != nil && !errors.Is(err, ErrNotInitialized) {
		log.Printf("audio: pulse %s: %v", kind, err)
	}
}

// SoundFor maps a feedback pulse to its sound
func SoundFor(kind engine.PulseKind) SoundType {
	switch kind {
	case engine.PulseHit:
		return SoundHit
	case engine.PulseComplete:
		return SoundChime
	default:
		return SoundClick
	}
}

// Fallback returns a Feedback that plays sound when available and calls fallback otherwise
func Fallback(sm *SoundManager, fallback engine.Feedback) engine.Feedback {
	return engine.FeedbackFunc(func(kind engine.PulseKind) {
		if sm != nil && sm.IsInitialized() {
			sm.Pulse(kind)
			return
		}
		if fallback != nil {
			fallback.Pulse(kind)
		}
	})
}
