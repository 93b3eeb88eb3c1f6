package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/game"
)

// actionRegistry maps canonical action names to commands
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]game.Command{
	// Unbind sentinel
	"none": game.CommandNone,

	"up":      game.CommandUp,
	"down":    game.CommandDown,
	"left":    game.CommandLeft,
	"right":   game.CommandRight,
	"refresh": game.CommandRefresh,
	"quit":    game.CommandQuit,
}

// ActionCommand resolves an action name to its command
func ActionCommand(name string) (game.Command, bool) {
	cmd, ok := actionRegistry[name]
	return cmd, ok
}

// keyNames maps the special key names accepted in keymap files
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-r":    tcell.KeyCtrlR,
}

// KeyByName resolves a special key name, case-insensitive at the call site
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
