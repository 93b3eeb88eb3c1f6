package navigation

import (
	"github.com/lixenwraith/vi-maze/maze"
)

// IsLegalMove reports whether one step in d from p lands on an in-bounds Open or Goal cell
func IsLegalMove(grid *maze.Grid, p maze.Point, d maze.Direction) bool {
	next := p.Add(d)
	return grid.InBounds(next) && grid.At(next).Traversable()
}

// Step returns the destination when the move is legal, p unchanged otherwise
func Step(grid *maze.Grid, p maze.Point, d maze.Direction) (maze.Point, bool) {
	if !IsLegalMove(grid, p, d) {
		return p, false
	}
	return p.Add(d), true
}

// IsGoal reports arrival
func IsGoal(p, exit maze.Point) bool {
	return p == exit
}
