package constants

import "time"

// AudioSampleRate is the speaker rate in Hz
const AudioSampleRate = 44100

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond

// Step tick
const (
	StepSoundDuration = 25 * time.Millisecond
	StepSoundAttack   = 2 * time.Millisecond
	StepSoundRelease  = 15 * time.Millisecond
	StepSoundFreq     = 660.0
)

// Bump (illegal move) buzz
const (
	BumpSoundDuration = 80 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 40 * time.Millisecond
	BumpSoundFreq     = 120.0
)

// Level complete chime, one note per entry
var LevelChimeFreqs = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	LevelChimeNoteDuration = 90 * time.Millisecond
	LevelChimeAttack       = 5 * time.Millisecond
	LevelChimeRelease      = 60 * time.Millisecond
)

// Refresh sweep
const (
	RefreshSoundDuration = 200 * time.Millisecond
	RefreshSoundAttack   = 10 * time.Millisecond
	RefreshSoundRelease  = 120 * time.Millisecond
	RefreshSoundFreq     = 330.0
)

// DefaultMasterVolume is the linear gain applied on top of per-effect volumes
const DefaultMasterVolume = 0.5
