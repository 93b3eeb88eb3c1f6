package render

import (
	"github.com/gdamore/tcell/v2"
)

// Styles used by the default layers
var (
	StyleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleOpen     = tcell.StyleDefault
	StyleGoal     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	StyleBanner   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	StyleTitle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	StyleMessage  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleProgress = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	StyleHint     = tcell.StyleDefault.Foreground(tcell.ColorSilver).Dim(true)
)
