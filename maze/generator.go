package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// MinDimension is the smallest height or width that can hold an entrance, a wall row and an exit
const MinDimension = 3

var ErrInvalidDimensions = errors.New("maze dimensions too small to carve")

// Rand is the randomness the generator consumes; *math/rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded source; seed 0 seeds from the clock
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type Result struct {
	Grid     *Grid
	Entrance Point // Row 0, always Open
	Exit     Point // Row Height-1, always Goal
}

// Generate carves a perfect maze with a randomized depth-first search on the
// half-resolution lattice anchored at the entrance
// Even dimensions are rounded down to odd; anything below MinDimension fails
func Generate(height, width int, rng Rand) (Result, error) {
	if height < MinDimension || width < MinDimension {
		return Result{}, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, height, width, MinDimension, MinDimension)
	}
	rows := ensureOdd(height)
	cols := ensureOdd(width)

	grid := NewGrid(rows, cols)

	// Columns are drawn in [1, cols-2] so corners stay walls
	entrance := Point{Row: 0, Col: 1 + rng.Intn(cols-2)}
	exit := Point{Row: rows - 1, Col: 1 + rng.Intn(cols-2)}
	grid.Set(entrance, Open)
	grid.Set(exit, Goal)

	carve(grid, entrance, exit, rng)

	return Result{Grid: grid, Entrance: entrance, Exit: exit}, nil
}

// GenerateReachable regenerates until the exit joins the entrance tree or attempts run out
// The bool reports whether the returned maze is solvable
func GenerateReachable(height, width int, rng Rand, attempts int) (Result, bool, error) {
	if attempts < 1 {
		attempts = 1
	}
	var res Result
	for i := 0; i < attempts; i++ {
		var err error
		res, err = Generate(height, width, rng)
		if err != nil {
			return Result{}, false, err
		}
		if Inspect(res.Grid, res.Entrance, res.Exit).ExitReachable {
			return res, true, nil
		}
	}
	return res, false, nil
}

// --- Core Algorithm ---

// frame is one level of the depth-first search held on an explicit stack
type frame struct {
	at   Point
	dirs [4]Direction
	next int // Index of the next direction to try
}

func newFrame(at Point, rng Rand) frame {
	f := frame{at: at, dirs: Directions}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// carve runs the recursive backtracker without recursion
// Directions are shuffled once per cell on entry and tried in that order, so the
// carving order matches the recursive formulation for the same random stream
func carve(grid *Grid, entrance, exit Point, rng Rand) {
	frames := make([]frame, 0, (grid.Height/2+1)*(grid.Width/2+1))
	frames = append(frames, newFrame(entrance, rng))
	exitLinked := false

	for len(frames) > 0 {
		top := len(frames) - 1
		f := &frames[top]
		if f.next == len(f.dirs) {
			frames = frames[:top]
			continue
		}

		d := f.dirs[f.next]
		f.next++
		between := f.at.Add(d)
		target := between.Add(d)

		switch {
		case target == exit && !exitLinked:
			// Exit is a leaf: connect it, never expand along the border row
			grid.Set(between, Open)
			exitLinked = true
		case interior(grid, target) && grid.At(target) == Wall:
			grid.Set(between, Open)
			grid.Set(target, Open)
			frames = append(frames, newFrame(target, rng))
		}
	}
}

// interior reports whether p lies strictly inside the border
func interior(grid *Grid, p Point) bool {
	return p.Row > 0 && p.Row < grid.Height-1 && p.Col > 0 && p.Col < grid.Width-1
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n%2 == 0 {
		return n - 1 // Round down to stay within bounds
	}
	return n
}
