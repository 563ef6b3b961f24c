// Package geometry provides the grid math used by the keystroke planner.
//
// The fundamental types are:
//
//   - Point: an integer coordinate on the grid (x, y and a z level)
//   - Direction: one of the 8 compass directions, each with a unit delta
//   - Area: a rectangle described by two opposite corner points
//
// Points are immutable values compared by equality. All arithmetic
// (Add, Scale, Midpoint) returns new values.
package geometry
