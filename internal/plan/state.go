package plan

import "qfkeys/internal/geometry"

// State is the planner's position between areas: where the cursor is,
// the last command issued, and the submenu currently entered (empty
// when at the root menu). It is passed in and returned from each
// per-area step; nothing is mutated in place.
type State struct {
	Cursor      geometry.Point
	LastCommand string
	LastSubmenu string
}
