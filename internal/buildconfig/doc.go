// Package buildconfig holds the per-phase policy tables that drive the
// keystroke planner.
//
// A phase ("dig", "build", "place", "query", ...) describes one family
// of commands: which keycodes initialize it, how a repeated command
// differs from a changed one, the designate pattern (the ordered slots
// and literal keycodes assembled per area), the sizing and materials
// strategy names, and the regex patterns identifying commands that live
// in a submenu.
//
// Built-in defaults cover the standard phases; a TOML policy file can
// overlay them. Patterns are compiled at load time so malformed
// configuration fails before any planning starts.
package buildconfig
