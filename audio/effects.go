package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-maze/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	glide    float64 // Hz added per second, 0 for a steady tone
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		freq := o.freq + o.glide*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// NewSweep creates an oscillator whose frequency moves from 'from' to 'to' over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(from, duration, wave, rate).(*oscillator)
	if secs := duration.Seconds(); secs > 0 {
		osc.glide = (to - from) / secs
	}
	return osc
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateStepSound generates a short soft tick for a legal move
func CreateStepSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.StepSoundFreq, constants.StepSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.StepSoundDuration, constants.StepSoundAttack, constants.StepSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundStep))
}

// CreateBumpSound generates a low harsh buzz for a blocked move
func CreateBumpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.BumpSoundFreq, constants.BumpSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.BumpSoundDuration, constants.BumpSoundAttack, constants.BumpSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundBump))
}

// CreateChimeSound generates a rising arpeggio for level completion
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constants.LevelChimeFreqs))
	for _, freq := range constants.LevelChimeFreqs {
		osc := NewOscillator(freq, constants.LevelChimeNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constants.LevelChimeNoteDuration, constants.LevelChimeAttack, constants.LevelChimeRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.effectVolume(SoundChime))
}

// CreateRefreshSound generates a falling sweep for a regenerated maze
func CreateRefreshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(constants.RefreshSoundFreq, constants.RefreshSoundFreq/2, constants.RefreshSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.RefreshSoundDuration, constants.RefreshSoundAttack, constants.RefreshSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundRefresh))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundStep:
		return CreateStepSound(cfg)
	case SoundBump:
		return CreateBumpSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundRefresh:
		return CreateRefreshSound(cfg)
	default:
		return nil
	}
}
