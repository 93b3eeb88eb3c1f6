package render

import (
	"github.com/lixenwraith/vi-maze/constants"
	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/maze"
)

// BannerLayer draws the pattern and level title above and below the maze
type BannerLayer struct{}

func (BannerLayer) Draw(f game.Frame, l Layout, buf *Buffer) {
	if f.Grid == nil {
		return
	}
	pattern := BannerPattern(f.Grid.Width)
	title := LevelTitle(f.Level)
	col := CenterColumn(title, f.Grid.Width)

	buf.SetString(0, 0, pattern, StyleBanner)
	buf.SetString(col, 1, title, StyleTitle)
	buf.SetString(col, l.FooterTop, title, StyleTitle)
	buf.SetString(0, l.FooterTop+1, pattern, StyleBanner)
}

// MazeLayer draws walls, corridors and the goal
type MazeLayer struct{}

func (MazeLayer) Draw(f game.Frame, l Layout, buf *Buffer) {
	g := f.Grid
	if g == nil {
		return
	}
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			switch g.At(maze.Point{Row: row, Col: col}) {
			case maze.Wall:
				buf.Set(col, l.MazeTop+row, constants.WallGlyph, StyleWall)
			case maze.Goal:
				buf.Set(col, l.MazeTop+row, constants.GoalGlyph, StyleGoal)
			default:
				buf.Set(col, l.MazeTop+row, constants.OpenGlyph, StyleOpen)
			}
		}
	}
}

// PlayerLayer overlays the player marker
type PlayerLayer struct{}

func (PlayerLayer) Draw(f game.Frame, l Layout, buf *Buffer) {
	if f.Grid == nil || !f.Grid.InBounds(f.Position) {
		return
	}
	buf.Set(f.Position.Col, l.MazeTop+f.Position.Row, constants.PlayerGlyph, StylePlayer)
}

// StatusLayer draws the message line and the progress bar
type StatusLayer struct{}

func (StatusLayer) Draw(f game.Frame, l Layout, buf *Buffer) {
	if f.Message != "" {
		buf.SetString(0, l.MessageRow, f.Message, StyleMessage)
	}
	if bar := ProgressBar(f.Progress); bar != "" {
		buf.SetString(0, l.ProgressRow, bar, StyleProgress)
	}
}

// HintLayer draws the key hint, it can be switched off at runtime
type HintLayer struct {
	Hidden bool
}

func (h *HintLayer) IsVisible() bool {
	return !h.Hidden
}

func (h *HintLayer) Draw(f game.Frame, l Layout, buf *Buffer) {
	if f.Hint != "" {
		buf.SetString(0, l.HintRow, f.Hint, StyleHint)
	}
}
