package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/vi-maze/constants"
	"github.com/lixenwraith/vi-maze/game"
)

// Layout places the frame regions inside the buffer, all values in cells
//
//	row 0            banner pattern
//	row 1            level title
//	MazeTop..        maze rows
//	FooterTop        level title
//	FooterTop+1      banner pattern
//	MessageRow       status message
//	ProgressRow      progress bar (autonomous walks only)
//	HintRow          key hint
type Layout struct {
	Width       int
	Height      int
	MazeTop     int
	FooterTop   int
	MessageRow  int
	ProgressRow int
	HintRow     int
}

const bannerRows = 2

// NewLayout sizes the buffer to fit the maze and the widest status line of the frame
func NewLayout(f game.Frame) Layout {
	mazeWidth, mazeHeight := 0, 0
	if f.Grid != nil {
		mazeWidth, mazeHeight = f.Grid.Width, f.Grid.Height
	}

	l := Layout{MazeTop: bannerRows}
	l.FooterTop = l.MazeTop + mazeHeight
	l.MessageRow = l.FooterTop + bannerRows + 1
	l.ProgressRow = l.MessageRow + 1
	l.HintRow = l.ProgressRow + 1
	l.Height = l.HintRow + 1

	l.Width = mazeWidth
	for _, s := range []string{f.Message, f.Hint, ProgressBar(f.Progress), LevelTitle(f.Level)} {
		if n := utf8.RuneCountInString(s); n > l.Width {
			l.Width = n
		}
	}
	return l
}

// LevelTitle is the banner caption
func LevelTitle(level int) string {
	return fmt.Sprintf("Level %d", level)
}

// BannerPattern repeats the banner unit to cover width columns
func BannerPattern(width int) string {
	return strings.Repeat(constants.BannerUnit, width/len(constants.BannerUnit))
}

// CenterColumn returns the starting column that centres s within width
func CenterColumn(s string, width int) int {
	pad := (width - utf8.RuneCountInString(s)) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

// ProgressBar formats an autonomous walk as a fixed-length bar with percentage
// Inactive progress yields an empty string
func ProgressBar(p game.Progress) string {
	if !p.Active() {
		return ""
	}
	fraction := p.Fraction()
	filled := int(fraction * constants.ProgressBarLength)
	return fmt.Sprintf("|%s%s| %.2f%%",
		strings.Repeat(string(constants.ProgressFillGlyph), filled),
		strings.Repeat(string(constants.ProgressRestGlyph), constants.ProgressBarLength-filled),
		fraction*100,
	)
}
