package keybind

import "sort"

// Table maps key identifiers to the ordered macro command lines bound
// to them. Lines carry the two-tab indentation the macro file format
// expects.
type Table struct {
	binds map[string][]string
}

// NewTable creates a table with an empty binding list for every seed
// key. The seed is normally keycode.MacroTokens().
func NewTable(seed []string) *Table {
	binds := make(map[string][]string, len(seed))
	for _, key := range seed {
		binds[key] = nil
	}
	return &Table{binds: binds}
}

// Append adds an action binding for key, preserving insertion order.
func (t *Table) Append(key, action string) {
	t.binds[key] = append(t.binds[key], "\t\t"+action)
}

// Lookup returns the command lines bound to key. The second result is
// false only when the key is entirely unknown; a seeded key with no
// file bindings returns an empty list and true.
func (t *Table) Lookup(key string) ([]string, bool) {
	lines, ok := t.binds[key]
	return lines, ok
}

// Keys returns all known key identifiers, sorted.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.binds))
	for k := range t.binds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of known key identifiers.
func (t *Table) Len() int {
	return len(t.binds)
}
