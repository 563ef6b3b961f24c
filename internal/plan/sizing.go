package plan

import (
	"qfkeys/internal/geometry"
	"qfkeys/internal/keycode"
)

// SizingFunc resizes the designation under way from a 1x1 seed at
// start to the area spanning start and end. It returns the keycodes to
// emit and the authoritative cursor position afterwards; the planner
// never infers the position itself.
type SizingFunc func(p *Planner, start, end geometry.Point) ([]keycode.Keycode, geometry.Point)

// sizingRegistry maps policy strategy names to implementations.
// Resolution happens once, in NewPlanner, so an unknown name fails
// before planning begins.
var sizingRegistry = map[string]SizingFunc{
	"standard": sizeStandard,
	"build":    sizeBuild,
	"fixed":    sizeFixed,
}

// sizeStandard handles dig, place and query style commands: the resize
// is implicit in moving the cursor to the opposite corner.
func sizeStandard(p *Planner, start, end geometry.Point) ([]keycode.Keycode, geometry.Point) {
	return p.Move(start, end, 0, true), end
}

// sizeBuild handles constructions with a continuously adjustable
// footprint: move to the midpoint, then grow the 1x1 seed with widen
// and heighten keycodes.
func sizeBuild(p *Planner, start, end geometry.Point) ([]keycode.Keycode, geometry.Point) {
	mid := start.Midpoint(end)
	keys := p.Move(start, mid, 0, true)

	area := geometry.NewArea(start, end)
	keys = append(keys, keycode.Repeat(keycode.Widen, area.Width()-1)...)
	keys = append(keys, keycode.Repeat(keycode.Heighten, area.Height()-1)...)

	return keys, mid
}

// sizeFixed handles buildings with a fixed footprint (3x3 workshops,
// 5x5 depots). The blueprint marks the footprint; deploying from its
// center cell is all the sizing needed.
func sizeFixed(p *Planner, start, end geometry.Point) ([]keycode.Keycode, geometry.Point) {
	mid := start.Midpoint(end)
	return p.Move(start, mid, 0, true), mid
}
