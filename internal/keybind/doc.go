// Package keybind loads the target application's keybinding definition
// file into a lookup table for the macro serializer.
//
// The file is organized into bind-groups. Each group starts with a
// header naming the bound action, like
//
//	[BIND:DESIGNATE_DIG:REPEAT_NOT]
//
// followed by one or more key identifier lines in [KEY:x] or [SYM:x]
// wrapper markup. A key identifier appearing in several groups collects
// every group's action, in file order.
//
// The resulting Table is seeded with the macro translator's token set
// so that every keycode the planner can emit resolves to at least an
// empty binding list; only tokens absent from both the seed and the
// file are unresolvable.
package keybind
