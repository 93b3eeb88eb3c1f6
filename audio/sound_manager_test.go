package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-maze/constants"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := max(smp[0], -smp[0]); v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	assert.NotPanics(t, func() {
		sm.PlayStep()
		sm.PlayBump()
		sm.PlayLevelComplete()
		sm.PlayRefresh()
		sm.Cleanup()
	})
	assert.Zero(t, sm.Played(SoundStep), "uninitialized manager must not queue sounds")
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	require.NoError(t, sm.Initialize(), "second initialization is a no-op")

	sm.PlayStep()
	assert.Equal(t, 1, sm.Played(SoundStep))

	sm.SetMuted(true)
	sm.PlayStep()
	assert.Equal(t, 1, sm.Played(SoundStep), "muted cues are dropped")

	sm.Cleanup()
	sm.SetMuted(false)
	sm.PlayStep()
	assert.Equal(t, 1, sm.Played(SoundStep), "cues after cleanup are dropped")
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	require.NoError(t, sm.Initialize())
	sm.PlayBump()
	assert.Zero(t, sm.Played(SoundBump))
	assert.Zero(t, sm.Played(SoundType(99)))
}

func TestSoundEffectLengths(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound SoundType
		want  time.Duration
	}{
		{SoundStep, constants.StepSoundDuration},
		{SoundBump, constants.BumpSoundDuration},
		{SoundChime, constants.LevelChimeNoteDuration * time.Duration(len(constants.LevelChimeFreqs))},
		{SoundRefresh, constants.RefreshSoundDuration},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.sound, cfg)
			require.NotNil(t, s)

			n, peak := drain(t, s)
			assert.InDelta(t, rate.N(tt.want), n, float64(len(constants.LevelChimeFreqs)))
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}

	assert.Nil(t, GetSoundEffect(SoundType(42), cfg))
}

func TestSilentVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateStepSound(cfg))
	assert.Zero(t, peak)
}

func TestSweepGlides(t *testing.T) {
	s := NewSweep(100, 200, time.Second, WaveSine, beep.SampleRate(1000)).(*oscillator)
	assert.InDelta(t, 100.0, s.glide, 1e-9)

	steady := NewOscillator(100, time.Second, WaveSine, beep.SampleRate(1000)).(*oscillator)
	assert.Zero(t, steady.glide)
}
