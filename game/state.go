package game

import (
	"github.com/lixenwraith/vi-maze/maze"
)

// State is the game loop phase
type State int

const (
	StatePlaying State = iota
	StateLevelComplete
	StateRefreshing
	StateQuitting
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level-complete"
	case StateRefreshing:
		return "refreshing"
	case StateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Command is one manual-mode request from the player
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandRefresh
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandRefresh:
		return "refresh"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction maps movement commands to grid steps
func (c Command) Direction() (maze.Direction, bool) {
	switch c {
	case CommandUp:
		return maze.Up, true
	case CommandDown:
		return maze.Down, true
	case CommandLeft:
		return maze.Left, true
	case CommandRight:
		return maze.Right, true
	default:
		return maze.Direction{}, false
	}
}
