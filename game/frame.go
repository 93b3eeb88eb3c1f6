package game

import (
	"github.com/lixenwraith/vi-maze/maze"
)

// Progress tracks an autonomous walk along a computed path
type Progress struct {
	Step, Total int
}

// Active reports whether a walk is in progress
func (p Progress) Active() bool {
	return p.Total > 0
}

// Fraction returns completion in [0, 1]
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Step) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Frame is a read-only snapshot handed to renderers after every state change
type Frame struct {
	Grid     *maze.Grid
	Position maze.Point
	Exit     maze.Point
	Level    int
	State    State
	Message  string
	Hint     string
	Progress Progress
}

// Renderer draws frames
type Renderer interface {
	Render(f Frame)
}

// CommandReader blocks until the player issues a command
type CommandReader interface {
	ReadCommand() (Command, error)
}

// Acknowledger is implemented by readers that can wait for a "continue" keypress
type Acknowledger interface {
	Acknowledge() error
}

// Sounds receives gameplay cues
type Sounds interface {
	PlayStep()
	PlayBump()
	PlayLevelComplete()
	PlayRefresh()
}

type nopSounds struct{}

func (nopSounds) PlayStep()          {}
func (nopSounds) PlayBump()          {}
func (nopSounds) PlayLevelComplete() {}
func (nopSounds) PlayRefresh()       {}
