package keybind

import (
	"reflect"
	"strings"
	"testing"
)

const sampleInterface = `
[BIND:DESIGNATE_DIG:REPEAT_NOT]
[KEY:d]
[BIND:DESIGNATE_CHANNEL:REPEAT_NOT]
[KEY:h]
[SYM:0:F1]
[BIND:SELECT:REPEAT_NOT]
[KEY:Enter]
[BIND:SELECT_ALL:REPEAT_NOT]
[KEY:Enter]
`

func TestParseInterface(t *testing.T) {
	table, err := ParseInterface(strings.NewReader(sampleInterface))
	if err != nil {
		t.Fatalf("ParseInterface error = %v", err)
	}

	lines, ok := table.Lookup("d")
	if !ok {
		t.Fatal("Lookup(d) not found")
	}
	if want := []string{"\t\tDESIGNATE_DIG"}; !reflect.DeepEqual(lines, want) {
		t.Errorf("Lookup(d) = %q, want %q", lines, want)
	}

	// A group with multiple key identifier lines binds each of them.
	if lines, _ := table.Lookup("0:F1"); !reflect.DeepEqual(lines, []string{"\t\tDESIGNATE_CHANNEL"}) {
		t.Errorf("Lookup(0:F1) = %q", lines)
	}
}

func TestParseInterfaceAppendsInFileOrder(t *testing.T) {
	table, err := ParseInterface(strings.NewReader(sampleInterface))
	if err != nil {
		t.Fatalf("ParseInterface error = %v", err)
	}

	// "Enter" appears in two groups; both actions collect in file order.
	lines, ok := table.Lookup("Enter")
	if !ok {
		t.Fatal("Lookup(Enter) not found")
	}
	want := []string{"\t\tSELECT", "\t\tSELECT_ALL"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Lookup(Enter) = %q, want %q", lines, want)
	}
}

func TestParseInterfaceSeedsMacroTokens(t *testing.T) {
	table, err := ParseInterface(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseInterface error = %v", err)
	}

	// Every token the macro translator can produce must resolve, even
	// from an empty definition file.
	for _, key := range []string{"0:8", "1:9", "0:Enter", "+", "k"} {
		lines, ok := table.Lookup(key)
		if !ok {
			t.Errorf("Lookup(%q) not seeded", key)
		}
		if len(lines) != 0 {
			t.Errorf("Lookup(%q) = %q, want empty seed", key, lines)
		}
	}

	if _, ok := table.Lookup("no-such-key"); ok {
		t.Error("Lookup(no-such-key) resolved, want unknown")
	}
}

func TestParseInterfaceIgnoresJunk(t *testing.T) {
	table, err := ParseInterface(strings.NewReader(`
preamble text, no groups yet
[BIND:DESIGNATE_DIG:REPEAT_NOT]
some stray comment
[KEY:d]
`))
	if err != nil {
		t.Fatalf("ParseInterface error = %v", err)
	}
	lines, ok := table.Lookup("d")
	if !ok || len(lines) != 1 {
		t.Errorf("Lookup(d) = %q, %v", lines, ok)
	}
}
