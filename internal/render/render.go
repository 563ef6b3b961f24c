// Package render turns a planned keycode list into one of the two
// output encodings: a raw keystroke string, or macro-file text.
package render

import (
	"fmt"
	"strings"

	"qfkeys/internal/keybind"
	"qfkeys/internal/keycode"
	"qfkeys/internal/macro"
)

// Render converts keys to the requested mode.
//
// Key mode concatenates the translated keystroke tokens into a single
// string. Macro mode serializes against the keybinding table, which
// must not be nil, and honors title (empty means a generated one).
// Any other mode is a fatal error.
func Render(keys []keycode.Keycode, mode keycode.Mode, title string, table *keybind.Table) (string, error) {
	tokens, err := keycode.Translate(keys, mode)
	if err != nil {
		return "", err
	}

	switch mode {
	case keycode.ModeKey:
		return strings.Join(tokens, ""), nil
	case keycode.ModeMacro:
		return macro.NewSerializer(table).Render(tokens, title)
	default:
		// Translate already rejected unknown modes.
		return "", fmt.Errorf("%w: %q", keycode.ErrUnknownMode, string(mode))
	}
}
