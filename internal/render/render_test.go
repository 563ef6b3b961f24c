package render

import (
	"errors"
	"strings"
	"testing"

	"qfkeys/internal/keybind"
	"qfkeys/internal/keycode"
	"qfkeys/internal/macro"
)

func TestRenderKeyMode(t *testing.T) {
	keys := []keycode.Keycode{"d", "[se]", keycode.Select, "[+e]", keycode.Escape}
	out, err := Render(keys, keycode.ModeKey, "", nil)
	if err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if want := "d3{Enter}+6{Esc}"; out != want {
		t.Errorf("Render = %q, want %q", out, want)
	}
}

func TestRenderKeyModeEmpty(t *testing.T) {
	out, err := Render(nil, keycode.ModeKey, "", nil)
	if err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if out != "" {
		t.Errorf("Render = %q, want empty string", out)
	}
}

func TestRenderMacroModeEmpty(t *testing.T) {
	table := keybind.NewTable(keycode.MacroTokens())
	out, err := Render(nil, keycode.ModeMacro, "plan", table)
	if err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if out != "plan\nEnd of macro\n" {
		t.Errorf("Render = %q", out)
	}
}

func TestRenderMacroMode(t *testing.T) {
	table, err := keybind.ParseInterface(strings.NewReader(`
[BIND:DESIGNATE_DIG:REPEAT_NOT]
[KEY:d]
`))
	if err != nil {
		t.Fatal(err)
	}

	keys := []keycode.Keycode{"d", "[s]"}
	out, err := Render(keys, keycode.ModeMacro, "plan", table)
	if err != nil {
		t.Fatalf("Render error = %v", err)
	}
	want := "plan\n\t\tDESIGNATE_DIG\n\tEnd of group\n\tEnd of group\nEnd of macro\n"
	if out != want {
		t.Errorf("Render = %q, want %q", out, want)
	}
}

func TestRenderMacroModeUnboundKey(t *testing.T) {
	table := keybind.NewTable(keycode.MacroTokens())

	// "q" is neither in the static macro table nor bound by a file.
	_, err := Render([]keycode.Keycode{"q"}, keycode.ModeMacro, "plan", table)
	var unbound *macro.UnboundKeyError
	if !errors.As(err, &unbound) {
		t.Fatalf("error = %v, want UnboundKeyError", err)
	}
	if unbound.Key != "q" {
		t.Errorf("Key = %q, want %q", unbound.Key, "q")
	}
}

func TestRenderUnknownMode(t *testing.T) {
	_, err := Render(nil, keycode.Mode("html"), "", nil)
	if !errors.Is(err, keycode.ErrUnknownMode) {
		t.Errorf("error = %v, want ErrUnknownMode", err)
	}
}
