package grid

import (
	"testing"

	"qfkeys/internal/geometry"
)

func TestCellAt(t *testing.T) {
	g := New(10, 10)
	area := geometry.NewArea(geometry.Pt(1, 1), geometry.Pt(3, 2))
	g.SetCell(geometry.Pt(1, 1), Cell{Command: "d", Area: area})

	c, ok := g.CellAt(geometry.Pt(1, 1))
	if !ok {
		t.Fatal("CellAt(1,1) not found")
	}
	if c.Command != "d" {
		t.Errorf("Command = %q, want %q", c.Command, "d")
	}
	if c.Area != area {
		t.Errorf("Area = %v, want %v", c.Area, area)
	}

	if _, ok := g.CellAt(geometry.Pt(5, 5)); ok {
		t.Error("CellAt(5,5) found, want none")
	}
}

func TestIsOutOfBounds(t *testing.T) {
	g := New(10, 8)
	tests := []struct {
		p    geometry.Point
		want bool
	}{
		{geometry.Pt(0, 0), false},
		{geometry.Pt(9, 7), false},
		{geometry.Pt(10, 7), true},
		{geometry.Pt(9, 8), true},
		{geometry.Pt(-1, 0), true},
		{geometry.Pt(0, -1), true},
		{geometry.Point{X: 5, Y: 5, Z: -3}, false}, // z is unbounded
	}
	for _, tt := range tests {
		if got := g.IsOutOfBounds(tt.p); got != tt.want {
			t.Errorf("IsOutOfBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
