package keycode

import "qfkeys/internal/geometry"

// Keycode is an atomic symbolic input token.
type Keycode string

// Special keycodes understood by the translators.
const (
	Select    Keycode = "!" // confirm / enter
	SelectAll Keycode = "#" // shift-enter, select all
	Wait      Keycode = "%" // playback pause
	Escape    Keycode = "^" // exit current menu
	ZUp       Keycode = ">"
	ZDown     Keycode = "<"
	Widen     Keycode = "[widen]"
	Heighten  Keycode = "[heighten]"
	MenuDown  Keycode = "[menudown]" // next menu item
	MenuUp    Keycode = "[menuup]"
)

// Move returns the single-step move keycode for a compass direction,
// e.g. "[ne]".
func Move(d geometry.Direction) Keycode {
	return Keycode("[" + d.Compass() + "]")
}

// Jump returns the 10-cell jump move keycode for a compass direction,
// e.g. "[+ne]".
func Jump(d geometry.Direction) Keycode {
	return Keycode("[+" + d.Compass() + "]")
}

// Repeat returns n copies of k.
func Repeat(k Keycode, n int) []Keycode {
	if n <= 0 {
		return nil
	}
	keys := make([]Keycode, n)
	for i := range keys {
		keys[i] = k
	}
	return keys
}
