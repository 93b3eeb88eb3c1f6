package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/game"
)

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]game.Command

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]game.Command
}

// DefaultKeyTable returns the default key bindings: arrows, WASD, vi hjkl, r and q
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]game.Command{
			tcell.KeyUp:     game.CommandUp,
			tcell.KeyDown:   game.CommandDown,
			tcell.KeyLeft:   game.CommandLeft,
			tcell.KeyRight:  game.CommandRight,
			tcell.KeyEscape: game.CommandQuit,
			tcell.KeyCtrlC:  game.CommandQuit,
			tcell.KeyCtrlQ:  game.CommandQuit,
			tcell.KeyCtrlR:  game.CommandRefresh,
		},

		Runes: map[rune]game.Command{
			'w': game.CommandUp,
			'a': game.CommandLeft,
			's': game.CommandDown,
			'd': game.CommandRight,

			'k': game.CommandUp,
			'h': game.CommandLeft,
			'j': game.CommandDown,
			'l': game.CommandRight,

			'r': game.CommandRefresh,
			'q': game.CommandQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to a command
// key is tcell.KeyRune for printable input, in which case r is consulted
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (game.Command, bool) {
	if key == tcell.KeyRune {
		cmd, ok := kt.Runes[unicode.ToLower(r)]
		return cmd, ok && cmd != game.CommandNone
	}
	cmd, ok := kt.SpecialKeys[key]
	return cmd, ok && cmd != game.CommandNone
}

// LookupRune resolves typed line-mode input
func (kt *KeyTable) LookupRune(r rune) (game.Command, bool) {
	return kt.Lookup(tcell.KeyRune, r)
}

var defaultKeys = DefaultKeyTable()

// FromKey maps a key using the default bindings
func FromKey(key tcell.Key, r rune) (game.Command, bool) {
	return defaultKeys.Lookup(key, r)
}
