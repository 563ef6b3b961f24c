package plan

import (
	"qfkeys/internal/geometry"
	"qfkeys/internal/keycode"
)

// jumpDistance is how far one jump keycode moves the cursor.
const jumpDistance = 10

// jumpThreshold is the minimum remaining distance worth jump-optimizing.
// Below it, single steps never cost more keycodes than a jump plus the
// corrections it would need.
const jumpThreshold = 8

// Move returns the keycodes that move the cursor from start to end.
// Z-level changes are emitted first, one keycode per level, and are
// never jump-optimized. With allowJumps set, planar movement uses
// 10-cell jump keycodes where they save keystrokes.
func (p *Planner) Move(start, end geometry.Point, zOffset int, allowJumps bool) []keycode.Keycode {
	var keys []keycode.Keycode

	if zOffset > 0 {
		keys = append(keys, keycode.Repeat(keycode.ZUp, zOffset)...)
	} else if zOffset < 0 {
		keys = append(keys, keycode.Repeat(keycode.ZDown, -zOffset)...)
	}

	allowBacktrack := true
	for start.X != end.X || start.Y != end.Y {
		dir := geometry.Between(start, end)
		delta := dir.Delta()

		dx := abs(start.X - end.X)
		dy := abs(start.Y - end.Y)

		// Move diagonally as far as possible, then axis-align.
		var steps int
		switch {
		case dx == 0:
			steps = dy
		case dy == 0:
			steps = dx
		default:
			steps = min(dx, dy)
		}

		if !allowJumps || steps < jumpThreshold || !allowBacktrack {
			keys = append(keys, keycode.Repeat(keycode.Move(dir), steps)...)
			start = start.Add(delta.Scale(steps))
			allowBacktrack = true
			continue
		}

		jumps := steps / jumpDistance
		leftover := steps % jumpDistance
		jumpDelta := delta.Scale(jumpDistance)

		if leftover >= jumpThreshold {
			// A large leftover means one extra jump past the target
			// costs fewer keycodes than the single steps it replaces,
			// provided the overshoot stays inside the grid. The
			// backtrack latch stops the next iteration from retrying
			// the same overjump forever when it does not.
			test := start.Add(jumpDelta.Scale(jumps + 1))
			if p.grid.IsOutOfBounds(test) {
				keys = append(keys, keycode.Repeat(keycode.Move(dir), leftover)...)
				start = start.Add(delta.Scale(steps))
				allowBacktrack = false
			} else {
				jumps++
				start = start.Add(jumpDelta.Scale(jumps))
				allowBacktrack = true
			}
		} else {
			keys = append(keys, keycode.Repeat(keycode.Move(dir), leftover)...)
			start = start.Add(delta.Scale(steps))
			allowBacktrack = true
		}

		if jumps > 0 {
			keys = append(keys, keycode.Repeat(keycode.Jump(dir), jumps)...)
		}
	}

	return keys
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
