package maze

import (
	"strings"
)

// Cell is the state of a single grid square
type Cell uint8

const (
	Wall Cell = iota
	Open
	Goal
)

// Glyph returns the single-character text form used by String and test fixtures
func (c Cell) Glyph() byte {
	switch c {
	case Open:
		return ' '
	case Goal:
		return '*'
	default:
		return '#'
	}
}

// Traversable reports whether a player may stand on the cell
func (c Cell) Traversable() bool {
	return c == Open || c == Goal
}

// Point is a (row, column) grid coordinate
type Point struct {
	Row, Col int
}

// Add returns p moved by d
func (p Point) Add(d Direction) Point {
	return Point{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Manhattan returns |dRow| + |dCol| between p and q
func (p Point) Manhattan(q Point) int {
	dr := p.Row - q.Row
	if dr < 0 {
		dr = -dr
	}
	dc := p.Col - q.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Direction is a unit step on the grid
type Direction struct {
	DRow, DCol int
	Name       string
}

var (
	Up    = Direction{DRow: -1, DCol: 0, Name: "up"}
	Down  = Direction{DRow: 1, DCol: 0, Name: "down"}
	Left  = Direction{DRow: 0, DCol: -1, Name: "left"}
	Right = Direction{DRow: 0, DCol: 1, Name: "right"}
)

// Directions lists the four unit steps in expansion order: right, down, left, up
var Directions = [4]Direction{Right, Down, Left, Up}

// Grid is a dense row-major H x W cell array
type Grid struct {
	Height, Width int
	Cells         []Cell
}

// NewGrid returns a grid with every cell set to Wall
func NewGrid(height, width int) *Grid {
	return &Grid{
		Height: height,
		Width:  width,
		Cells:  make([]Cell, height*width),
	}
}

// ParseGrid builds a grid from glyph rows ('#' wall, ' ' or '.' open, '*' goal)
// Rows shorter than the first are padded with walls
func ParseGrid(rows ...string) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		for c := 0; c < g.Width && c < len(row); c++ {
			switch row[c] {
			case ' ', '.':
				g.Cells[r*g.Width+c] = Open
			case '*':
				g.Cells[r*g.Width+c] = Goal
			}
		}
	}
	return g
}

// InBounds reports whether p lies inside the grid
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the cell at p, Wall when p is out of bounds
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Cells[p.Row*g.Width+p.Col]
}

// Set writes c at p; out of bounds writes are dropped
func (g *Grid) Set(p Point, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.Cells[p.Row*g.Width+p.Col] = c
}

// Index returns the flat index of p
func (g *Grid) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// PointAt converts a flat index back to a point
func (g *Grid) PointAt(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Height: g.Height, Width: g.Width, Cells: cells}
}

// Row returns row r as glyph text
func (g *Grid) Row(r int) string {
	buf := make([]byte, g.Width)
	for c := 0; c < g.Width; c++ {
		buf[c] = g.Cells[r*g.Width+c].Glyph()
	}
	return string(buf)
}

// String renders the grid as newline-separated glyph rows
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for r := 0; r < g.Height; r++ {
		sb.WriteString(g.Row(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}
