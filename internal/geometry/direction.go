package geometry

// Direction is one of the 8 compass directions, or None.
type Direction uint8

const (
	// None means the two points coincide.
	None Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// deltas holds the unit movement vector for each direction.
// North is negative y, matching the grid's top-left origin.
var deltas = [...]Point{
	None:      {},
	North:     {Y: -1},
	NorthEast: {X: 1, Y: -1},
	East:      {X: 1},
	SouthEast: {X: 1, Y: 1},
	South:     {Y: 1},
	SouthWest: {X: -1, Y: 1},
	West:      {X: -1},
	NorthWest: {X: -1, Y: -1},
}

// compass holds the short compass name for each direction.
var compass = [...]string{
	None:      "",
	North:     "n",
	NorthEast: "ne",
	East:      "e",
	SouthEast: "se",
	South:     "s",
	SouthWest: "sw",
	West:      "w",
	NorthWest: "nw",
}

// Delta returns the unit movement vector for the direction.
func (d Direction) Delta() Point {
	if int(d) >= len(deltas) {
		return Point{}
	}
	return deltas[d]
}

// Compass returns the short compass name ("n", "ne", ...) for the
// direction, or the empty string for None.
func (d Direction) Compass() string {
	if int(d) >= len(compass) {
		return ""
	}
	return compass[d]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == None {
		return "none"
	}
	return d.Compass()
}

// Between returns the direction that most directly connects start to end:
// diagonal when both axes differ, axis-aligned otherwise, None when the
// points coincide (z is ignored).
func Between(start, end Point) Direction {
	dx := sign(end.X - start.X)
	dy := sign(end.Y - start.Y)

	switch {
	case dx == 0 && dy < 0:
		return North
	case dx > 0 && dy < 0:
		return NorthEast
	case dx > 0 && dy == 0:
		return East
	case dx > 0 && dy > 0:
		return SouthEast
	case dx == 0 && dy > 0:
		return South
	case dx < 0 && dy > 0:
		return SouthWest
	case dx < 0 && dy == 0:
		return West
	case dx < 0 && dy < 0:
		return NorthWest
	default:
		return None
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
