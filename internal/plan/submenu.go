package plan

import "qfkeys/internal/keycode"

// submenuStep is one transition of the submenu state machine: the
// keycodes to leave and enter menus, the command body with any submenu
// key stripped, and the submenu active afterwards.
type submenuStep struct {
	exitMenu []keycode.Keycode
	menu     []keycode.Keycode
	body     string
	submenu  string
}

// submenuTransition applies the current command to the submenu state
// machine. A command matching one of the phase's submenu patterns has
// its first character as the submenu id; entering emits that id as a
// keycode, and switching or leaving emits an escape first.
func (p *Planner) submenuTransition(command, lastSubmenu string) (submenuStep, error) {
	id, rest, ok, err := p.config.MatchSubmenu(command)
	if err != nil {
		return submenuStep{}, err
	}

	if !ok {
		step := submenuStep{body: command}
		if lastSubmenu != "" {
			// Was in a submenu, want the parent menu again.
			step.exitMenu = []keycode.Keycode{keycode.Escape}
		}
		return step, nil
	}

	step := submenuStep{body: rest, submenu: id}
	switch {
	case lastSubmenu == "":
		step.menu = []keycode.Keycode{keycode.Keycode(id)}
	case lastSubmenu != id:
		step.exitMenu = []keycode.Keycode{keycode.Escape}
		step.menu = []keycode.Keycode{keycode.Keycode(id)}
	default:
		// Already inside the right submenu.
	}
	return step, nil
}
