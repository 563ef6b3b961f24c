// Package macro renders translated keycode tokens into the target
// application's macro-file format.
//
// A macro file is line oriented: the first line is the macro title,
// each keycode's bound command lines follow (two-tab indented) with a
// "\tEnd of group" delimiter after every keycode, and the final line is
// "End of macro". A token with no entry in the keybinding table aborts
// the whole render; no partial macro is ever produced.
package macro
