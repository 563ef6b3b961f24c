package geometry

// Area is a rectangle described by two opposite corner points.
// The corners may be given in any order.
type Area struct {
	Corner1 Point
	Corner2 Point
}

// NewArea returns the area spanning the two corners.
func NewArea(a, b Point) Area {
	return Area{Corner1: a, Corner2: b}
}

// Width returns the horizontal extent in cells (at least 1).
func (a Area) Width() int {
	return abs(a.Corner1.X-a.Corner2.X) + 1
}

// Height returns the vertical extent in cells (at least 1).
func (a Area) Height() int {
	return abs(a.Corner1.Y-a.Corner2.Y) + 1
}

// Size returns the total cell count of the area.
func (a Area) Size() int {
	return a.Width() * a.Height()
}

// OppositeCorner returns the corner diagonally opposite p.
// p is expected to be one of the area's four corners; for any point it
// returns the reflection across the area's other extremes.
func (a Area) OppositeCorner(p Point) Point {
	opp := Point{Z: p.Z}

	if p.X == a.Corner1.X {
		opp.X = a.Corner2.X
	} else {
		opp.X = a.Corner1.X
	}
	if p.Y == a.Corner1.Y {
		opp.Y = a.Corner2.Y
	} else {
		opp.Y = a.Corner1.Y
	}
	return opp
}

// Contains reports whether p lies inside the area (z is ignored).
func (a Area) Contains(p Point) bool {
	x1, x2 := minmax(a.Corner1.X, a.Corner2.X)
	y1, y2 := minmax(a.Corner1.Y, a.Corner2.Y)
	return p.X >= x1 && p.X <= x2 && p.Y >= y1 && p.Y <= y2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
