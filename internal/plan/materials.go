package plan

import (
	"math"

	"qfkeys/internal/keycode"
)

// MaterialsFunc produces the keycodes that select materials for an
// area of the given cell count.
type MaterialsFunc func(areaSize int) []keycode.Keycode

// materialsRegistry maps policy strategy names to implementations.
var materialsRegistry = map[string]MaterialsFunc{
	"setmats": setMats,
}

// setMats repeatedly select-alls from the materials list, advancing a
// category between rounds, so that exhausting the auto-prioritized
// material does not leave the area partly unfilled. The repeat count
// scales with sqrt of the area size; this is best-effort, not exact.
func setMats(areaSize int) []keycode.Keycode {
	if areaSize <= 1 {
		return []keycode.Keycode{keycode.SelectAll}
	}

	reps := 2 * int(math.Sqrt(float64(areaSize)))
	keys := make([]keycode.Keycode, 0, 2*reps-1)
	for i := 0; i < reps-1; i++ {
		keys = append(keys, keycode.SelectAll, keycode.MenuDown)
	}
	return append(keys, keycode.SelectAll)
}
