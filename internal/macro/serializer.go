package macro

import (
	"fmt"
	"math/rand"
	"strings"

	"qfkeys/internal/keybind"
)

// Format delimiter lines.
const (
	endOfGroup = "\tEnd of group"
	endOfMacro = "End of macro"
)

// leaveScreen is the action bound to the escape keycode; escape is
// untranslated by the macro table and resolved here instead.
const leaveScreen = "\t\tLEAVESCREEN"

// UnboundKeyError indicates a keycode with no entry in the merged
// keybinding table.
type UnboundKeyError struct {
	// Key is the offending key token.
	Key string
}

// Error implements the error interface.
func (e *UnboundKeyError) Error() string {
	return fmt.Sprintf("key %q has no binding in the keybinding table", e.Key)
}

// Serializer renders token lists into macro-file text.
type Serializer struct {
	table *keybind.Table
}

// NewSerializer creates a serializer over the given keybinding table.
func NewSerializer(table *keybind.Table) *Serializer {
	return &Serializer{table: table}
}

// Render produces the complete macro-file contents for the tokens.
// An empty title gets a generated fallback with a random numeric
// suffix so that successive untitled macros stay distinguishable.
func (s *Serializer) Render(tokens []string, title string) (string, error) {
	if title == "" {
		title = fmt.Sprintf("@@@qf%d", rand.Intn(999999999))
	}

	lines := []string{title}
	for _, tok := range tokens {
		if tok == "^" {
			lines = append(lines, leaveScreen, endOfGroup)
			continue
		}

		binds, ok := s.table.Lookup(tok)
		if !ok {
			return "", &UnboundKeyError{Key: tok}
		}
		lines = append(lines, binds...)
		lines = append(lines, endOfGroup)
	}
	lines = append(lines, endOfMacro)

	return strings.Join(lines, "\n") + "\n", nil
}
