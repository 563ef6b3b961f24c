package keycode

import (
	"errors"
	"fmt"
)

// Mode selects the output encoding.
type Mode string

const (
	// ModeKey renders keycodes as literal keystroke symbols.
	ModeKey Mode = "key"
	// ModeMacro renders keycodes as macro-player tokens.
	ModeMacro Mode = "macro"
)

// ErrUnknownMode indicates a mode other than "key" or "macro".
var ErrUnknownMode = errors.New("unknown output mode")

// keyTable maps keycodes to literal keystroke symbols. It must stay in
// exact correspondence with the target application's default bindings.
var keyTable = map[Keycode]string{
	ZUp:       "^5",
	ZDown:     "+5",
	"[n]":     "8",
	"[ne]":    "9",
	"[e]":     "6",
	"[se]":    "3",
	"[s]":     "2",
	"[sw]":    "1",
	"[w]":     "4",
	"[nw]":    "7",
	"[+n]":    "+8",
	"[+ne]":   "+9",
	"[+e]":    "+6",
	"[+se]":   "+3",
	"[+s]":    "+2",
	"[+sw]":   "+1",
	"[+w]":    "+4",
	"[+nw]":   "+7",
	Widen:     "k",
	Heighten:  "u",
	MenuDown:  "{NumpadAdd}",
	MenuUp:    "{NumpadSub}",
	Select:    "{Enter}",
	SelectAll: "+{Enter}",
	Wait:      "{wait}",
	Escape:    "{Esc}",
}

// macroTable maps keycodes to macro-player tokens. Directions become
// "cursor-mode:digit" pairs; the wait keycode has no macro form and is
// dropped. The escape keycode is untranslated here and special-cased by
// the macro serializer.
var macroTable = map[Keycode]string{
	ZUp:       ">",
	ZDown:     "<",
	"[n]":     "0:8",
	"[ne]":    "0:9",
	"[e]":     "0:6",
	"[se]":    "0:3",
	"[s]":     "0:2",
	"[sw]":    "0:1",
	"[w]":     "0:4",
	"[nw]":    "0:7",
	"[+n]":    "1:8",
	"[+ne]":   "1:9",
	"[+e]":    "1:6",
	"[+se]":   "1:3",
	"[+s]":    "1:2",
	"[+sw]":   "1:1",
	"[+w]":    "1:4",
	"[+nw]":   "1:7",
	Widen:     "k",
	Heighten:  "u",
	MenuDown:  "+",
	MenuUp:    "-",
	Select:    "0:Enter",
	SelectAll: "1:Enter",
	Wait:      "",
}

// table returns the static translation table for a mode.
func table(mode Mode) (map[Keycode]string, error) {
	switch mode {
	case ModeKey:
		return keyTable, nil
	case ModeMacro:
		return macroTable, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}

// TranslateOne renders a single keycode for the given mode. Keycodes
// absent from the mode's table pass through unchanged. A translation to
// the empty token means the keycode has no representation in this mode;
// callers should drop it.
func TranslateOne(k Keycode, mode Mode) (string, error) {
	t, err := table(mode)
	if err != nil {
		return "", err
	}
	if tok, ok := t[k]; ok {
		return tok, nil
	}
	return string(k), nil
}

// Translate renders a keycode list for the given mode, dropping
// keycodes with no representation.
func Translate(keys []Keycode, mode Mode) ([]string, error) {
	if _, err := table(mode); err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(keys))
	for _, k := range keys {
		tok, err := TranslateOne(k, mode)
		if err != nil {
			return nil, err
		}
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// MacroTokens returns every token the macro translator can produce.
// The keybinding table is seeded with these so that any translated
// keycode resolves, even when the binding file does not mention it.
func MacroTokens() []string {
	tokens := make([]string, 0, len(macroTable))
	for _, tok := range macroTable {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
