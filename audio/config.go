package audio

import (
	"github.com/lixenwraith/vi-maze/constants"
)

// AudioConfig holds audio settings, volumes are linear in [0, 1]
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: constants.DefaultMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundStep:    0.4,
			SoundBump:    0.8,
			SoundChime:   0.9,
			SoundRefresh: 0.7,
		},
	}
}

// effectVolume returns the combined gain for a sound
func (c *AudioConfig) effectVolume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
