package constants

import "time"

// Maze defaults, matching the classic 21x41 board
const (
	DefaultMazeHeight = 21
	DefaultMazeWidth  = 41
)

// Autonomous pacing
const (
	// DefaultStepDelay is the pause between animated steps along a path
	DefaultStepDelay = 30 * time.Millisecond

	// DefaultLevelPause is the pause after a level completes or a maze is force-refreshed
	DefaultLevelPause = 1 * time.Second

	// DefaultAutoDuration applies when autonomous mode has no configured duration and no prompt
	DefaultAutoDuration = 60 * time.Second
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-maze.log"
	MaxLogSize  = 10 * 1024 * 1024
)
