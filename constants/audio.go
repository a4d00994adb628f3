package constants

import "time"

// Speaker setup
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 50 * time.Millisecond
)

// Countdown click: short square blip
const (
	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 20 * time.Millisecond
)

// Hit tick: bright sine pulse, stands in for haptic feedback
const (
	HitSoundDuration = 60 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond
)

// Completion chime: two-note rise
const (
	ChimeNote1Duration = 90 * time.Millisecond
	ChimeNote2Duration = 320 * time.Millisecond
	ChimeSoundAttack   = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 240 * time.Millisecond
)
