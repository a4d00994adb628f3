package audio

import (
	"errors"
)

// SoundType represents the feedback sounds
type SoundType int

const (
	SoundClick SoundType = iota // Countdown step
	SoundHit                    // Dot tapped in order
	SoundChime                  // Last dot tapped
	soundTypeCount
)

// String returns the string representation of SoundType
func (t SoundType) String() string {
	switch t {
	case SoundClick:
		return "Click"
	case SoundHit:
		return "Hit"
	case SoundChime:
		return "Chime"
	default:
		return "Unknown"
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: sound manager not initialized")
	ErrDisabled       = errors.New("audio: sound disabled")
)
