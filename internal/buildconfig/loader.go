package buildconfig

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"qfkeys/internal/keycode"
)

// phaseTOML is the TOML shape of one phase's policy.
type phaseTOML struct {
	Init        []string `toml:"init"`
	SameCmd     []string `toml:"samecmd"`
	DiffCmd     []string `toml:"diffcmd"`
	Designate   []string `toml:"designate"`
	SetSize     string   `toml:"setsize"`
	SetMats     string   `toml:"setmats"`
	SubmenuKeys []string `toml:"submenukeys"`
}

// LoadFile reads a TOML policy file and overlays it on the defaults.
// A phase present in the file replaces the default policy for that
// phase wholesale; phases the file does not mention keep their
// defaults.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening policy file: %w", err)
	}
	defer f.Close()

	return load(path, f)
}

// LoadReader reads a TOML policy overlay from r.
func LoadReader(r io.Reader) (*Config, error) {
	return load("<reader>", r)
}

func load(path string, r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}

	var phases map[string]phaseTOML
	if err := toml.Unmarshal(data, &phases); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	merged := Defaults().phases
	for name, pt := range phases {
		merged[name] = &CommandConfig{
			Init:        toKeycodes(pt.Init),
			SameCmd:     pt.SameCmd,
			DiffCmd:     pt.DiffCmd,
			Designate:   pt.Designate,
			SetSize:     pt.SetSize,
			SetMats:     pt.SetMats,
			SubmenuKeys: pt.SubmenuKeys,
		}
	}

	return New(merged)
}

func toKeycodes(ss []string) []keycode.Keycode {
	if len(ss) == 0 {
		return nil
	}
	keys := make([]keycode.Keycode, len(ss))
	for i, s := range ss {
		keys[i] = keycode.Keycode(s)
	}
	return keys
}
