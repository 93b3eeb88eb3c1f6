package navigation

import (
	"github.com/zyedidia/generic/heap"

	"github.com/lixenwraith/vi-maze/maze"
)

// Path is an ordered walk from a start cell to a goal cell, both included
// An empty path means the goal is unreachable
type Path []maze.Point

// Steps returns the number of moves along the path
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

const costUnreachable = 1<<31 - 1

// openEntry is a frontier record; stale entries are skipped on pop
type openEntry struct {
	idx int // Flat grid index
	g   int // Steps from start
	f   int // g + manhattan to goal
	seq int // Insertion order, breaks f ties
}

func lessEntry(a, b openEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// FindPath returns a shortest 4-connected path over Open/Goal cells using A* with
// the Manhattan heuristic
// Neighbors expand right, down, left, up and equal-f frontier entries pop in insertion
// order, so the result is deterministic for a given grid
func FindPath(grid *maze.Grid, start, goal maze.Point) Path {
	if !grid.At(start).Traversable() || !grid.At(goal).Traversable() {
		return nil
	}

	size := len(grid.Cells)
	gScore := make([]int, size)
	cameFrom := make([]int, size)
	closed := make([]bool, size)
	for i := range gScore {
		gScore[i] = costUnreachable
		cameFrom[i] = -1
	}

	startIdx := grid.Index(start)
	goalIdx := grid.Index(goal)
	gScore[startIdx] = 0

	open := heap.New[openEntry](lessEntry)
	seq := 0
	open.Push(openEntry{idx: startIdx, g: 0, f: start.Manhattan(goal), seq: seq})

	for open.Size() > 0 {
		curr, _ := open.Pop()
		if closed[curr.idx] || curr.g > gScore[curr.idx] {
			continue
		}
		if curr.idx == goalIdx {
			return reconstruct(grid, cameFrom, goalIdx)
		}
		// Consistent heuristic: a closed cell never improves
		closed[curr.idx] = true

		p := grid.PointAt(curr.idx)
		for _, d := range maze.Directions {
			next := p.Add(d)
			if !grid.At(next).Traversable() {
				continue
			}
			ni := grid.Index(next)
			if closed[ni] {
				continue
			}
			tentative := curr.g + 1
			if tentative < gScore[ni] {
				gScore[ni] = tentative
				cameFrom[ni] = curr.idx
				seq++
				open.Push(openEntry{idx: ni, g: tentative, f: tentative + next.Manhattan(goal), seq: seq})
			}
		}
	}
	return nil
}

func reconstruct(grid *maze.Grid, cameFrom []int, goalIdx int) Path {
	n := 0
	for i := goalIdx; i != -1; i = cameFrom[i] {
		n++
	}
	path := make(Path, n)
	for i := goalIdx; i != -1; i = cameFrom[i] {
		n--
		path[n] = grid.PointAt(i)
	}
	return path
}
