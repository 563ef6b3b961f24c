package buildconfig

import "qfkeys/internal/keycode"

// Defaults returns the built-in policy for the standard phases.
//
// The patterns mirror the target application's menu flow: dig-style
// phases press the command, move to a corner, confirm, stretch to the
// opposite corner and confirm again; build-style phases place from the
// area midpoint and grow the footprint with widen/heighten keys before
// picking materials.
func Defaults() *Config {
	cfg, err := New(map[string]*CommandConfig{
		"dig": {
			SameCmd:   nil, // designation mode persists between areas
			DiffCmd:   []string{SlotCmd},
			Designate: []string{SlotExitMenu, SlotMenu, SlotCmd, SlotMoveTo, "!", SlotSetSize, "!", "%"},
			SetSize:   "standard",
		},
		"build": {
			SameCmd:     []string{SlotCmd},
			DiffCmd:     []string{SlotCmd},
			Designate:   []string{SlotExitMenu, SlotMenu, SlotCmd, SlotMoveTo, SlotSetSize, "!", SlotSetMats, "%"},
			SetSize:     "build",
			SetMats:     "setmats",
			SubmenuKeys: []string{"^w", "^e", "^C", "^M", "^T"},
		},
		"workshop": {
			SameCmd:     []string{SlotCmd},
			DiffCmd:     []string{SlotCmd},
			Designate:   []string{SlotExitMenu, SlotMenu, SlotCmd, SlotMoveTo, SlotSetSize, "!", SlotSetMats, "%"},
			SetSize:     "fixed",
			SetMats:     "setmats",
			SubmenuKeys: []string{"^w", "^e"},
		},
		"place": {
			SameCmd:   nil,
			DiffCmd:   []string{SlotCmd},
			Designate: []string{SlotExitMenu, SlotMenu, SlotCmd, SlotMoveTo, "!", SlotSetSize, "!", "%"},
			SetSize:   "standard",
		},
		"query": {
			Init:      []keycode.Keycode{keycode.Escape},
			SameCmd:   []string{SlotCmd},
			DiffCmd:   []string{SlotCmd},
			Designate: []string{SlotExitMenu, SlotMenu, SlotMoveTo, SlotCmd, SlotSetSize, "%"},
			SetSize:   "standard",
		},
	})
	if err != nil {
		// Built-in patterns are static; a compile failure is a bug.
		panic(err)
	}
	return cfg
}
