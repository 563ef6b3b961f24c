// Package keycode defines the abstract input unit shared by the planner
// and the output encoders.
//
// A Keycode is a symbolic token: a literal character ("d"), a bracketed
// named action ("[n]", "[widen]", "[menudown]"), a bracketed jump move
// ("[+ne]", a 10-cell cursor displacement), or one of the special
// literals "!" (select), "#" (select all), "%" (wait), "^" (escape) and
// ">" / "<" (z-level moves).
//
// Keycodes are the universal intermediate representation: the planner
// emits them, and Translate renders them into one of two concrete
// encodings. Key mode produces literal keystroke symbols suitable for
// direct input injection; macro mode produces the tokens the target
// application's macro player understands. Keycodes absent from a mode's
// table pass through unchanged, which is how raw command characters
// reach the output untouched.
package keycode
