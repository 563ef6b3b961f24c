package geometry

import "fmt"

// Point is an integer coordinate on the grid. Z is the level; blueprints
// that never change level leave it zero.
type Point struct {
	X int
	Y int
	Z int
}

// Pt is a convenience constructor for a point on the current level.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Scale returns p with each component multiplied by n.
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n, Z: p.Z * n}
}

// Midpoint returns the point halfway between p and q.
// Component halves truncate toward p, matching how a cursor centers
// on even-sized areas.
func (p Point) Midpoint(q Point) Point {
	return Point{
		X: p.X + (q.X-p.X)/2,
		Y: p.Y + (q.Y-p.Y)/2,
		Z: p.Z + (q.Z-p.Z)/2,
	}
}

// String returns the point in (x, y, z) form.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
