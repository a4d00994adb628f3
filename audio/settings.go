package audio

import "github.com/lixenwraith/tapgrid/constants"

// Settings controls synthesis and playback levels
type Settings struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int

	// EffectVolumes scales each sound before MasterVolume
	EffectVolumes [soundTypeCount]float64
}

// DefaultSettings returns enabled audio at full master volume
func DefaultSettings() Settings {
	return Settings{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundClick: 0.5,
			SoundHit:   0.6,
			SoundChime: 0.7,
		},
	}
}

// volume returns the effective gain for t
func (s Settings) volume(t SoundType) float64 {
	if t < 0 || t >= soundTypeCount {
		return 0
	}
	return s.EffectVolumes[t] * s.MasterVolume
}
