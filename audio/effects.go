package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/tapgrid/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator of the given length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sineTone is a pure tone cut to duration
// generators.SineTone rejects frequencies at or above Nyquist, the oscillator covers those
func sineTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), tone)
}

// CreateClickSound generates the short blip played on each countdown value
func CreateClickSound(s Settings) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)

	osc := NewOscillator(660.0, constants.ClickSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ClickSoundDuration, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)

	return newVolume(shaped, s.volume(SoundClick))
}

// CreateHitSound generates the tick played when a dot is tapped in order
func CreateHitSound(s Settings) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)

	// Fundamental (A5) plus a soft octave
	fund := NewOscillator(880.0, constants.HitSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	over := NewOscillator(1760.0, constants.HitSoundDuration, WaveTriangle, rate)
	overShaped := NewEnvelope(over, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.75),
		newVolume(overShaped, 0.25),
	)
	return newVolume(mixed, s.volume(SoundHit))
}

// CreateChimeSound generates the two-note rise played on completion
func CreateChimeSound(s Settings) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)

	// B5 then E6
	n1 := sineTone(987.77, constants.ChimeNote1Duration, rate)
	n1Shaped := NewEnvelope(n1, constants.ChimeNote1Duration, constants.ChimeSoundAttack, constants.ChimeNote1Release, rate)
	n2 := sineTone(1318.51, constants.ChimeNote2Duration, rate)
	n2Shaped := NewEnvelope(n2, constants.ChimeNote2Duration, constants.ChimeSoundAttack, constants.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), s.volume(SoundChime))
}

// SoundEffect returns a fresh streamer for t, nil for unknown types
func SoundEffect(t SoundType, s Settings) beep.Streamer {
	switch t {
	case SoundClick:
		return CreateClickSound(s)
	case SoundHit:
		return CreateHitSound(s)
	case SoundChime:
		return CreateChimeSound(s)
	default:
		return nil
	}
}
