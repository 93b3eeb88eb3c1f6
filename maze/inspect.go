package maze

import (
	"github.com/zyedidia/generic/mapset"
)

// Report summarizes the topology of a carved grid as seen from the entrance
type Report struct {
	Carved        int  // Non-wall cells in the whole grid
	Reachable     int  // Non-wall cells reachable from the entrance
	Edges         int  // Adjacent pairs among reachable cells
	ExitReachable bool // Exit belongs to the entrance component
}

// Acyclic reports whether the entrance component is a tree
func (r Report) Acyclic() bool {
	return r.Reachable > 0 && r.Edges == r.Reachable-1
}

// Connected reports whether every carved cell except an isolated exit is reachable
func (r Report) Connected() bool {
	if r.ExitReachable {
		return r.Reachable == r.Carved
	}
	return r.Reachable == r.Carved-1
}

// Inspect walks the entrance component breadth-first
func Inspect(grid *Grid, entrance, exit Point) Report {
	var rep Report
	for _, c := range grid.Cells {
		if c.Traversable() {
			rep.Carved++
		}
	}
	if !grid.At(entrance).Traversable() {
		return rep
	}

	visited := mapset.New[Point]()
	visited.Put(entrance)
	queue := []Point{entrance}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		// Count each undirected edge once via its right and down ends
		if grid.At(curr.Add(Right)).Traversable() {
			rep.Edges++
		}
		if grid.At(curr.Add(Down)).Traversable() {
			rep.Edges++
		}

		for _, d := range Directions {
			next := curr.Add(d)
			if grid.At(next).Traversable() && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	rep.Reachable = visited.Size()
	rep.ExitReachable = visited.Has(exit)
	return rep
}
