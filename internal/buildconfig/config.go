package buildconfig

import (
	"fmt"
	"regexp"

	"qfkeys/internal/keycode"
)

// Template slot names recognized in designate patterns and command
// templates. Any other entry is passed through as a literal keycode.
const (
	SlotMoveTo   = "moveto"
	SlotSetSize  = "setsize"
	SlotSetMats  = "setmats"
	SlotMenu     = "menu"
	SlotExitMenu = "exitmenu"
	SlotCmd      = "cmd"
)

// CommandConfig is the policy for one phase of commands.
type CommandConfig struct {
	// Init keycodes are emitted once, before the first area.
	Init []keycode.Keycode

	// SameCmd is the command template used when an area repeats the
	// previous area's command. The token "cmd" expands to the command
	// body; other tokens pass through as literal keycodes.
	SameCmd []string

	// DiffCmd is the command template used when the command changes.
	DiffCmd []string

	// Designate is the per-area assembly pattern: an ordered mix of
	// slot names and literal keycodes.
	Designate []string

	// SetSize names the area sizing strategy.
	SetSize string

	// SetMats names the material selection strategy; empty means the
	// phase selects no materials.
	SetMats string

	// SubmenuKeys are regex patterns identifying commands that live in
	// a submenu. A matching command's first character is the submenu id
	// and is stripped from the command body.
	SubmenuKeys []string

	submenuRes []*regexp.Regexp
}

// compile prepares the submenu patterns. Called once at load time.
func (c *CommandConfig) compile() error {
	c.submenuRes = make([]*regexp.Regexp, 0, len(c.SubmenuKeys))
	for _, pat := range c.SubmenuKeys {
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrBadPattern, pat, err)
		}
		c.submenuRes = append(c.submenuRes, re)
	}
	return nil
}

// MatchSubmenu tests command against the phase's submenu patterns.
// On a single match it returns the submenu id (the command's first
// character) and the command body with the id stripped. Two or more
// matching patterns are a configuration error.
func (c *CommandConfig) MatchSubmenu(command string) (id, rest string, ok bool, err error) {
	var matched []string
	for i, re := range c.submenuRes {
		if loc := re.FindStringIndex(command); loc != nil && loc[0] == 0 {
			matched = append(matched, c.SubmenuKeys[i])
		}
	}

	switch len(matched) {
	case 0:
		return "", "", false, nil
	case 1:
		if command == "" {
			return "", "", false, nil
		}
		return command[:1], command[1:], true, nil
	default:
		return "", "", false, &SubmenuConflictError{Command: command, Patterns: matched}
	}
}

// Config maps phase names to their command policy.
type Config struct {
	phases map[string]*CommandConfig
}

// New builds a Config from the given phase policies, compiling every
// submenu pattern. Unknown strategy names are not checked here; the
// planner validates them against its registries on construction.
func New(phases map[string]*CommandConfig) (*Config, error) {
	for name, cc := range phases {
		if err := cc.compile(); err != nil {
			return nil, fmt.Errorf("phase %q: %w", name, err)
		}
	}
	return &Config{phases: phases}, nil
}

// Phase returns the policy for a phase name.
func (c *Config) Phase(name string) (*CommandConfig, error) {
	cc, ok := c.phases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPhase, name)
	}
	return cc, nil
}

// Phases returns the configured phase names.
func (c *Config) Phases() []string {
	names := make([]string, 0, len(c.phases))
	for name := range c.phases {
		names = append(names, name)
	}
	return names
}
