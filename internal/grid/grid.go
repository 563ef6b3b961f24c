// Package grid maps blueprint positions to designated cells and answers
// the bounds queries the movement planner needs for its jump shortcuts.
package grid

import (
	"qfkeys/internal/geometry"
)

// Cell is a designated position: the command to issue there and the
// area the designation covers.
type Cell struct {
	Command string
	Area    geometry.Area
}

// Grid holds the designated cells of one blueprint level.
// The extent runs from (0, 0) to (Width-1, Height-1).
type Grid struct {
	width  int
	height int
	cells  map[geometry.Point]Cell
}

// New creates an empty grid with the given extent.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make(map[geometry.Point]Cell),
	}
}

// Width returns the horizontal extent in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical extent in cells.
func (g *Grid) Height() int { return g.height }

// SetCell designates the cell at p.
func (g *Grid) SetCell(p geometry.Point, c Cell) {
	g.cells[p] = c
}

// CellAt returns the cell designated at p, if any.
func (g *Grid) CellAt(p geometry.Point) (Cell, bool) {
	c, ok := g.cells[p]
	return c, ok
}

// IsOutOfBounds reports whether p lies outside the grid extent.
// The z level is unbounded; only the plane is checked.
func (g *Grid) IsOutOfBounds(p geometry.Point) bool {
	return p.X < 0 || p.Y < 0 || p.X >= g.width || p.Y >= g.height
}
