package plan

import (
	"reflect"
	"strings"
	"testing"

	"qfkeys/internal/buildconfig"
	"qfkeys/internal/geometry"
	"qfkeys/internal/grid"
	"qfkeys/internal/keycode"
)

func newTestPlanner(t *testing.T, g *grid.Grid) *Planner {
	t.Helper()
	cfg := buildconfig.Defaults()
	dig, err := cfg.Phase("dig")
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlanner(g, dig)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// simulate replays movement keycodes and returns the final cursor.
func simulate(t *testing.T, start geometry.Point, keys []keycode.Keycode) geometry.Point {
	t.Helper()

	byCompass := make(map[string]geometry.Point)
	for _, d := range []geometry.Direction{
		geometry.North, geometry.NorthEast, geometry.East, geometry.SouthEast,
		geometry.South, geometry.SouthWest, geometry.West, geometry.NorthWest,
	} {
		byCompass[d.Compass()] = d.Delta()
	}

	for _, k := range keys {
		s := string(k)
		switch {
		case s == ">":
			start.Z++
		case s == "<":
			start.Z--
		case strings.HasPrefix(s, "[+") && strings.HasSuffix(s, "]"):
			delta, ok := byCompass[s[2:len(s)-1]]
			if !ok {
				t.Fatalf("bad jump keycode %q", s)
			}
			start = start.Add(delta.Scale(10))
		case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
			delta, ok := byCompass[s[1:len(s)-1]]
			if !ok {
				t.Fatalf("bad move keycode %q", s)
			}
			start = start.Add(delta)
		default:
			t.Fatalf("unexpected keycode %q in movement", s)
		}
	}
	return start
}

func TestMoveReachesTarget(t *testing.T) {
	p := newTestPlanner(t, grid.New(100, 100))

	targets := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(5, 0),
		geometry.Pt(0, 5),
		geometry.Pt(7, 3),
		geometry.Pt(50, 50),
		geometry.Pt(3, 42),
		geometry.Pt(99, 1),
		geometry.Pt(18, 99),
	}
	starts := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(99, 99),
		geometry.Pt(42, 17),
	}

	for _, start := range starts {
		for _, end := range targets {
			for _, allowJumps := range []bool{true, false} {
				keys := p.Move(start, end, 0, allowJumps)
				if got := simulate(t, start, keys); got != end {
					t.Errorf("Move(%v, %v, jumps=%v) lands at %v", start, end, allowJumps, got)
				}
			}
		}
	}
}

func TestMoveShortDistanceUsesSingleSteps(t *testing.T) {
	p := newTestPlanner(t, grid.New(100, 100))

	keys := p.Move(geometry.Pt(0, 0), geometry.Pt(0, 5), 0, true)
	want := keycode.Repeat("[s]", 5)
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Move = %v, want %v", keys, want)
	}
}

func TestMoveDiagonalThenAxis(t *testing.T) {
	p := newTestPlanner(t, grid.New(100, 100))

	// 3 cells east, 5 south: 3 diagonal then 2 straight.
	keys := p.Move(geometry.Pt(0, 0), geometry.Pt(3, 5), 0, true)
	want := append(keycode.Repeat("[se]", 3), keycode.Repeat("[s]", 2)...)
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Move = %v, want %v", keys, want)
	}
}

func TestMoveOverjumpBacktrack(t *testing.T) {
	p := newTestPlanner(t, grid.New(100, 100))

	// 18 south: leftover 8 triggers the overjump. Two jumps overshoot
	// to y=20, then two single steps walk back.
	keys := p.Move(geometry.Pt(0, 0), geometry.Pt(0, 18), 0, true)
	want := append(keycode.Repeat("[+s]", 2), keycode.Repeat("[n]", 2)...)
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Move = %v, want %v", keys, want)
	}
	if got := simulate(t, geometry.Pt(0, 0), keys); got != geometry.Pt(0, 18) {
		t.Errorf("lands at %v, want (0, 18)", got)
	}
}

func TestMoveOverjumpBlockedByBounds(t *testing.T) {
	// Same 18-south move, but the grid ends at y=19 so the overjump to
	// y=20 would leave it: fall back to leftover singles plus one jump.
	p := newTestPlanner(t, grid.New(20, 20))

	keys := p.Move(geometry.Pt(0, 0), geometry.Pt(0, 18), 0, true)
	want := append(keycode.Repeat("[s]", 8), "[+s]")
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Move = %v, want %v", keys, want)
	}
	if got := simulate(t, geometry.Pt(0, 0), keys); got != geometry.Pt(0, 18) {
		t.Errorf("lands at %v, want (0, 18)", got)
	}
}

func TestMoveJumpWithSmallLeftover(t *testing.T) {
	p := newTestPlanner(t, grid.New(100, 100))

	// 23 east: leftover 3 singles first, then 2 jumps.
	keys := p.Move(geometry.Pt(0, 0), geometry.Pt(23, 0), 0, true)
	want := append(keycode.Repeat("[e]", 3), keycode.Repeat("[+e]", 2)...)
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Move = %v, want %v", keys, want)
	}
}

func TestMoveZLevelFirst(t *testing.T) {
	p := newTestPlanner(t, grid.New(100, 100))

	keys := p.Move(geometry.Pt(0, 0), geometry.Pt(2, 0), 3, true)
	want := append(keycode.Repeat(">", 3), keycode.Repeat("[e]", 2)...)
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Move = %v, want %v", keys, want)
	}

	keys = p.Move(geometry.Pt(0, 0), geometry.Pt(0, 0), -2, true)
	want = keycode.Repeat("<", 2)
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Move = %v, want %v", keys, want)
	}
}

func TestMoveDeterministic(t *testing.T) {
	p := newTestPlanner(t, grid.New(100, 100))

	a := p.Move(geometry.Pt(3, 97), geometry.Pt(88, 2), 0, true)
	b := p.Move(geometry.Pt(3, 97), geometry.Pt(88, 2), 0, true)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different keycode lists")
	}
}
