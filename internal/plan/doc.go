// Package plan computes the keycode sequence that reproduces a
// blueprint inside the target application.
//
// The Planner walks an ordered list of grid positions once, threading
// cursor position, last command and active submenu forward through an
// explicit State value. For each position it assembles movement,
// sizing, material selection and submenu keycodes into the phase's
// designate pattern, then advances the cursor to wherever the sizing
// strategy reports it ended up.
//
// Movement minimizes total keycodes by preferring 10-cell jump moves
// over single steps, including an overjump-and-backtrack optimization
// that deliberately overshoots when the detour stays inside the grid.
//
// Sizing and material strategies are looked up by name in closed
// registries when the planner is constructed, so a policy file naming
// an unimplemented strategy fails before any planning begins.
package plan
