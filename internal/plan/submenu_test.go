package plan

import (
	"reflect"
	"testing"

	"qfkeys/internal/buildconfig"
	"qfkeys/internal/grid"
	"qfkeys/internal/keycode"
)

func newSubmenuPlanner(t *testing.T) *Planner {
	t.Helper()
	cfg, err := buildconfig.New(map[string]*buildconfig.CommandConfig{
		"test": {
			DiffCmd:     []string{"cmd"},
			Designate:   []string{"cmd"},
			SetSize:     "standard",
			SubmenuKeys: []string{"^x", "^y"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	cc, err := cfg.Phase("test")
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlanner(grid.New(10, 10), cc)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSubmenuTransitions(t *testing.T) {
	p := newSubmenuPlanner(t)

	// Commands: two in submenu x, one in submenu y, one in no submenu.
	tests := []struct {
		command     string
		lastSubmenu string
		wantExit    []keycode.Keycode
		wantMenu    []keycode.Keycode
		wantBody    string
		wantSubmenu string
	}{
		{"xa", "", nil, []keycode.Keycode{"x"}, "a", "x"},
		{"xb", "x", nil, nil, "b", "x"},
		{"yc", "x", []keycode.Keycode{keycode.Escape}, []keycode.Keycode{"y"}, "c", "y"},
		{"d", "y", []keycode.Keycode{keycode.Escape}, nil, "d", ""},
		{"d", "", nil, nil, "d", ""},
	}

	for _, tt := range tests {
		step, err := p.submenuTransition(tt.command, tt.lastSubmenu)
		if err != nil {
			t.Errorf("submenuTransition(%q, %q) error = %v", tt.command, tt.lastSubmenu, err)
			continue
		}
		if !reflect.DeepEqual(step.exitMenu, tt.wantExit) {
			t.Errorf("submenuTransition(%q, %q) exit = %v, want %v",
				tt.command, tt.lastSubmenu, step.exitMenu, tt.wantExit)
		}
		if !reflect.DeepEqual(step.menu, tt.wantMenu) {
			t.Errorf("submenuTransition(%q, %q) menu = %v, want %v",
				tt.command, tt.lastSubmenu, step.menu, tt.wantMenu)
		}
		if step.body != tt.wantBody {
			t.Errorf("submenuTransition(%q, %q) body = %q, want %q",
				tt.command, tt.lastSubmenu, step.body, tt.wantBody)
		}
		if step.submenu != tt.wantSubmenu {
			t.Errorf("submenuTransition(%q, %q) submenu = %q, want %q",
				tt.command, tt.lastSubmenu, step.submenu, tt.wantSubmenu)
		}
	}
}
