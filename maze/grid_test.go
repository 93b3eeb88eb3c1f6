package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGridRoundTrip(t *testing.T) {
	g := ParseGrid(
		"#.#",
		"# #",
		"#*#",
	)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, Open, g.At(Point{0, 1}))
	assert.Equal(t, Open, g.At(Point{1, 1}))
	assert.Equal(t, Goal, g.At(Point{2, 1}))
	assert.Equal(t, "# #\n# #\n#*#\n", g.String())
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(Point{1, 2}, Open)
	g.Set(Point{-1, 0}, Open) // dropped
	g.Set(Point{0, 4}, Open)  // dropped

	assert.Equal(t, Open, g.At(Point{1, 2}))
	assert.Equal(t, Wall, g.At(Point{-1, 0}))
	assert.Equal(t, Wall, g.At(Point{3, 0}))
	assert.False(t, g.InBounds(Point{0, 4}))
	assert.Equal(t, 6, g.Index(Point{1, 2}))
	assert.Equal(t, Point{1, 2}, g.PointAt(6))
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := ParseGrid("# #")
	c := g.Clone()
	c.Set(Point{0, 1}, Wall)
	assert.Equal(t, Open, g.At(Point{0, 1}))
}

func TestPointHelpers(t *testing.T) {
	p := Point{2, 3}
	assert.Equal(t, Point{1, 3}, p.Add(Up))
	assert.Equal(t, Point{2, 4}, p.Add(Right))
	assert.Equal(t, 5, p.Manhattan(Point{0, 0}))
	assert.Equal(t, 0, p.Manhattan(p))
}

func TestInspectDetectsCycle(t *testing.T) {
	g := ParseGrid(
		"# ###",
		"#   #",
		"# # #",
		"#   #",
		"###*#",
	)
	rep := Inspect(g, Point{0, 1}, Point{4, 3})
	assert.True(t, rep.ExitReachable)
	assert.True(t, rep.Connected())
	assert.False(t, rep.Acyclic())
}

func TestInspectReportsStrayCells(t *testing.T) {
	g := ParseGrid(
		"# ###",
		"# # #",
		"### #",
		"#####",
		"###*#",
	)
	rep := Inspect(g, Point{0, 1}, Point{4, 3})
	assert.False(t, rep.ExitReachable)
	assert.Equal(t, 2, rep.Reachable)
	assert.Equal(t, 5, rep.Carved)
	assert.False(t, rep.Connected())
}
