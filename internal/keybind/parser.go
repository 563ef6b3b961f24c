package keybind

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"qfkeys/internal/keycode"
)

// groupHeader introduces a bind-group in the definition file.
const groupHeader = "[BIND:"

// keyLineRe extracts the key identifier from [KEY:x] / [SYM:x] markup.
var keyLineRe = regexp.MustCompile(`\[(?:KEY|SYM):(.+?)\]`)

// ParseInterface parses a keybinding definition stream into a Table
// seeded with the macro translator's token set.
//
// Lines inside a group that carry no recognized markup are ignored;
// text before the first group header is a preamble and is skipped.
func ParseInterface(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keybinding definitions: %w", err)
	}

	table := NewTable(keycode.MacroTokens())

	groups := strings.Split(string(data), groupHeader)
	for _, group := range groups[1:] {
		lines := strings.Split(group, "\n")

		// The action name is the header text before the first colon.
		action := lines[0]
		if i := strings.IndexByte(action, ':'); i >= 0 {
			action = action[:i]
		} else {
			action = strings.TrimSuffix(action, "]")
		}
		if action == "" {
			continue
		}

		for _, line := range lines[1:] {
			m := keyLineRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			table.Append(m[1], action)
		}
	}

	return table, nil
}

// LoadFile parses the keybinding definition file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keybinding file: %w", err)
	}
	defer f.Close()

	table, err := ParseInterface(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return table, nil
}
