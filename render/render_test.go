package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-maze/constants"
	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/maze"
)

func sampleFrame(t *testing.T) game.Frame {
	t.Helper()
	g := maze.ParseGrid(
		"# ###",
		"# ###",
		"#   #",
		"### #",
		"###*#",
	)
	return game.Frame{
		Grid:     g,
		Position: maze.Point{Row: 0, Col: 1},
		Exit:     maze.Point{Row: 4, Col: 3},
		Level:    1,
	}
}

type captureSink struct {
	lines []string
}

func (c *captureSink) Present(buf *Buffer) {
	c.lines = buf.Lines()
}

func TestLayout_Rows(t *testing.T) {
	l := NewLayout(sampleFrame(t))
	assert.Equal(t, 2, l.MazeTop)
	assert.Equal(t, 7, l.FooterTop)
	assert.Equal(t, 10, l.MessageRow)
	assert.Equal(t, 11, l.ProgressRow)
	assert.Equal(t, 12, l.HintRow)
	assert.Equal(t, 13, l.Height)
	assert.Equal(t, 7, l.Width, "title is wider than a 5 column maze")
}

func TestLayout_WidensForStatus(t *testing.T) {
	f := sampleFrame(t)
	f.Message = "No path found, refreshing maze..."
	assert.Equal(t, len(f.Message), NewLayout(f).Width)

	f.Progress = game.Progress{Step: 1, Total: 2}
	assert.Equal(t, len([]rune(ProgressBar(f.Progress))), NewLayout(f).Width)
}

func TestBannerHelpers(t *testing.T) {
	assert.Equal(t, "Level 12", LevelTitle(12))
	assert.Equal(t, "###", BannerPattern(5))
	assert.Equal(t, strings.Repeat("###", 13), BannerPattern(41))
	assert.Equal(t, 17, CenterColumn("Level 1", 41))
	assert.Equal(t, 0, CenterColumn("Level 1", 3))
}

func TestProgressBar(t *testing.T) {
	t.Run("inactive", func(t *testing.T) {
		assert.Empty(t, ProgressBar(game.Progress{}))
	})

	t.Run("quarter", func(t *testing.T) {
		bar := ProgressBar(game.Progress{Step: 10, Total: 40})
		want := "|" + strings.Repeat(string(constants.ProgressFillGlyph), 10) +
			strings.Repeat(string(constants.ProgressRestGlyph), 30) + "| 25.00%"
		assert.Equal(t, want, bar)
	})

	t.Run("overrun clamps", func(t *testing.T) {
		bar := ProgressBar(game.Progress{Step: 50, Total: 40})
		assert.Equal(t, "|"+strings.Repeat(string(constants.ProgressFillGlyph), 40)+"| 100.00%", bar)
	})
}

func TestOrchestrator_ComposesFrame(t *testing.T) {
	sink := &captureSink{}
	o := NewDefault(sink)

	o.Render(sampleFrame(t))

	want := []string{
		"###",
		"Level 1",
		"█P███",
		"█ ███",
		"█   █",
		"███ █",
		"███*█",
		"Level 1",
		"###",
		"",
		"",
		"",
		"",
	}
	assert.Equal(t, want, sink.lines)
	assert.Equal(t, 1, o.Frames())
}

func TestOrchestrator_PlayerCoversGoal(t *testing.T) {
	sink := &captureSink{}
	o := NewDefault(sink)

	f := sampleFrame(t)
	f.Position = f.Exit
	f.State = game.StateLevelComplete
	f.Message = "Level 1 complete!"
	o.Render(f)

	assert.Equal(t, "███P█", sink.lines[6])
	assert.Equal(t, "Level 1 complete!", sink.lines[10])
}

type recordingLayer struct {
	name string
	log  *[]string
}

func (r recordingLayer) Draw(game.Frame, Layout, *Buffer) {
	*r.log = append(*r.log, r.name)
}

func TestOrchestrator_PriorityOrder(t *testing.T) {
	var calls []string
	o := NewOrchestrator(&captureSink{})
	o.Register(recordingLayer{"ui", &calls}, PriorityUI)
	o.Register(recordingLayer{"grid", &calls}, PriorityGrid)
	o.Register(recordingLayer{"entities-a", &calls}, PriorityEntities)
	o.Register(recordingLayer{"background", &calls}, PriorityBackground)
	o.Register(recordingLayer{"entities-b", &calls}, PriorityEntities)

	o.Render(sampleFrame(t))

	assert.Equal(t, []string{"background", "grid", "entities-a", "entities-b", "ui"}, calls)
}

func TestOrchestrator_HiddenLayerSkipped(t *testing.T) {
	sink := &captureSink{}
	hint := &HintLayer{}
	o := NewOrchestrator(sink)
	o.Register(hint, PriorityOverlay)

	f := sampleFrame(t)
	f.Hint = "q quits"
	o.Render(f)
	assert.Equal(t, "q quits", sink.lines[12])

	hint.Hidden = true
	o.Render(f)
	assert.Equal(t, "", sink.lines[12])
}

func TestTextSink(t *testing.T) {
	var out bytes.Buffer
	o := NewText(&out, true)

	o.Render(sampleFrame(t))

	s := out.String()
	require.True(t, strings.HasPrefix(s, constants.ClearScreen))
	assert.Contains(t, s, "█P███\n")
	assert.Contains(t, s, "███*█\n")
}

func TestTextSink_NoClear(t *testing.T) {
	var out bytes.Buffer
	sink := NewTextSink(&out, false)
	NewDefault(sink).Render(sampleFrame(t))

	assert.True(t, strings.HasPrefix(out.String(), "###\nLevel 1\n"))
	assert.NoError(t, sink.Err())
}

func TestScreenSink(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)

	sink := NewScreenSink(screen)
	o := NewDefault(sink)
	o.Render(sampleFrame(t))

	ox, oy := sink.Origin(NewBuffer(7, 13))
	assert.Equal(t, 16, ox)
	assert.Equal(t, 3, oy)

	r, _, _, _ := screen.GetContent(ox+1, oy+2)
	assert.Equal(t, constants.PlayerGlyph, r)
	r, _, _, _ = screen.GetContent(ox, oy+2)
	assert.Equal(t, constants.WallGlyph, r)
	r, _, _, _ = screen.GetContent(ox+3, oy+6)
	assert.Equal(t, constants.GoalGlyph, r)
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(0, 0, 'a', tcell.StyleDefault)
	b.Set(5, 5, 'z', tcell.StyleDefault)
	b.SetString(1, 1, "bcd", tcell.StyleDefault)

	assert.Equal(t, []string{"a", " bc"}, b.Lines())
	assert.Equal(t, 'c', b.Get(2, 1).Rune)
	assert.Equal(t, rune(0), b.Get(9, 9).Rune)

	b.Resize(2, 2)
	assert.Equal(t, []string{"", ""}, b.Lines())
}

func TestOrchestrator_Redraw(t *testing.T) {
	sink := &captureSink{}
	o := NewDefault(sink)

	o.Redraw()
	assert.Zero(t, o.Frames(), "nothing to redraw before the first frame")

	f := sampleFrame(t)
	f.Message = "hello"
	o.Render(f)
	sink.lines = nil

	o.Redraw()
	assert.Equal(t, 2, o.Frames())
	assert.Equal(t, "hello", sink.lines[10])
}
