package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-maze/constants"
	"github.com/lixenwraith/vi-maze/maze"
)

// Mode selects who drives the player
type Mode string

const (
	ModeManual Mode = "manual"
	ModeAuto   Mode = "auto"
)

var (
	ErrInvalidMode     = errors.New("mode must be manual or auto")
	ErrInvalidDuration = errors.New("durations must not be negative")
	ErrInvalidVolume   = errors.New("master volume must be within [0, 1]")
)

// Config is the resolved game configuration
type Config struct {
	Height int
	Width  int
	Mode   Mode

	// Duration bounds an autonomous run; 0 asks on stdin at startup
	Duration   time.Duration
	StepDelay  time.Duration
	LevelPause time.Duration

	// Seed 0 seeds from the clock
	Seed            int64
	EnsureReachable bool

	Plain  bool
	Debug  bool
	LogDir string

	Sound        bool
	MasterVolume float64

	// Keymap overrides, action names per key
	Keys        map[string]string
	SpecialKeys map[string]string

	// ConfigPath is the TOML file that was applied, empty when none
	ConfigPath string
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Height:       constants.DefaultMazeHeight,
		Width:        constants.DefaultMazeWidth,
		Mode:         ModeManual,
		StepDelay:    constants.DefaultStepDelay,
		LevelPause:   constants.DefaultLevelPause,
		LogDir:       constants.LogDir,
		Sound:        true,
		MasterVolume: constants.DefaultMasterVolume,
	}
}

// Validate checks dimensions, mode, durations and volume
func (c *Config) Validate() error {
	if c.Height < maze.MinDimension || c.Width < maze.MinDimension {
		return fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, c.Height, c.Width)
	}
	switch c.Mode {
	case ModeManual, ModeAuto:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.Duration < 0 || c.StepDelay < 0 || c.LevelPause < 0 {
		return ErrInvalidDuration
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, c.MasterVolume)
	}
	return nil
}
