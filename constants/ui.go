package constants

// Maze glyphs
const (
	WallGlyph   = '█'
	OpenGlyph   = ' '
	GoalGlyph   = '*'
	PlayerGlyph = 'P'
)

// Banner and HUD layout
const (
	// BannerUnit is repeated Width/3 times above and below the maze
	BannerUnit = "###"

	// ProgressBarLength is the number of cells in the autonomous progress bar
	ProgressBarLength = 40
	ProgressFillGlyph = '༄'
	ProgressRestGlyph = '─'
)

// ANSI sequence used by the plain text renderer to clear the terminal and home the cursor
const ClearScreen = "\x1b[H\x1b[2J"

// Plain mode prompts
const (
	ManualPrompt   = "Enter WASD to move, R to refresh (Q to quit): "
	DurationPrompt = "Enter the duration (in seconds) for the AI to run: "
	ContinuePrompt = "Press Enter to continue to the next level..."
)
