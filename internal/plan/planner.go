package plan

import (
	"fmt"

	"qfkeys/internal/buildconfig"
	"qfkeys/internal/geometry"
	"qfkeys/internal/grid"
	"qfkeys/internal/keycode"
)

// Grid is the blueprint lookup the planner needs: designated cells by
// position and a bounds test for the overjump optimization.
type Grid interface {
	CellAt(geometry.Point) (grid.Cell, bool)
	IsOutOfBounds(geometry.Point) bool
}

// Planner converts an ordered list of plot positions into the keycode
// sequence that designates every area. A Planner is built for one
// phase policy and may be reused; each Plot call is independent.
type Planner struct {
	grid   Grid
	config *buildconfig.CommandConfig
	size   SizingFunc
	mats   MaterialsFunc
}

// NewPlanner builds a planner for one phase policy, resolving the
// policy's strategy names against the registries. Unknown names fail
// here, before any planning.
func NewPlanner(g Grid, cc *buildconfig.CommandConfig) (*Planner, error) {
	size, ok := sizingRegistry[cc.SetSize]
	if !ok {
		return nil, &UnknownStrategyError{Kind: "sizing", Name: cc.SetSize}
	}

	var mats MaterialsFunc
	if cc.SetMats != "" {
		mats, ok = materialsRegistry[cc.SetMats]
		if !ok {
			return nil, &UnknownStrategyError{Kind: "materials", Name: cc.SetMats}
		}
	}

	return &Planner{grid: g, config: cc, size: size, mats: mats}, nil
}

// Plot walks the plot positions once, starting with the cursor at
// cursor, and returns the full keycode list for the run.
func (p *Planner) Plot(plots []geometry.Point, cursor geometry.Point) ([]keycode.Keycode, error) {
	keys := append([]keycode.Keycode(nil), p.config.Init...)
	state := State{Cursor: cursor}

	for _, pos := range plots {
		areaKeys, next, err := p.step(state, pos)
		if err != nil {
			return nil, err
		}
		keys = append(keys, areaKeys...)
		state = next
	}

	return keys, nil
}

// step plans a single area: the keycodes to move there, enter the
// right menu, issue the command and size the designation. It returns
// the planner state for the next area.
func (p *Planner) step(state State, pos geometry.Point) ([]keycode.Keycode, State, error) {
	cell, ok := p.grid.CellAt(pos)
	if !ok {
		return nil, state, fmt.Errorf("%w: %v", ErrNoCell, pos)
	}

	command := cell.Command
	endPos := cell.Area.OppositeCorner(pos)

	template := p.config.DiffCmd
	if command == state.LastCommand {
		template = p.config.SameCmd
	}

	step, err := p.submenuTransition(command, state.LastSubmenu)
	if err != nil {
		return nil, state, err
	}

	sizeKeys, newCursor := p.size(p, pos, endPos)

	subs := map[string][]keycode.Keycode{
		buildconfig.SlotMoveTo:   p.Move(state.Cursor, pos, pos.Z-state.Cursor.Z, true),
		buildconfig.SlotSetSize:  sizeKeys,
		buildconfig.SlotMenu:     step.menu,
		buildconfig.SlotExitMenu: step.exitMenu,
		buildconfig.SlotCmd:      expandCommand(template, keycode.Split(step.body)),
		buildconfig.SlotSetMats:  nil,
	}
	if p.mats != nil {
		subs[buildconfig.SlotSetMats] = p.mats(cell.Area.Size())
	}

	var keys []keycode.Keycode
	for _, slot := range p.config.Designate {
		if vals, ok := subs[slot]; ok {
			keys = append(keys, vals...)
		} else {
			keys = append(keys, keycode.Keycode(slot))
		}
	}

	next := State{
		Cursor:      newCursor,
		LastCommand: command,
		LastSubmenu: step.submenu,
	}
	return keys, next, nil
}

// expandCommand substitutes the command-body keycodes for the "cmd"
// placeholder in a samecmd/diffcmd template. Other template tokens
// pass through as literal keycodes.
func expandCommand(template []string, body []keycode.Keycode) []keycode.Keycode {
	var keys []keycode.Keycode
	for _, t := range template {
		if t == buildconfig.SlotCmd {
			keys = append(keys, body...)
		} else {
			keys = append(keys, keycode.Keycode(t))
		}
	}
	return keys
}
