package topology

import "vital-ca/internal/rule"

// traits decomposes a boundary mode into two independent per-axis concerns:
// whether the axis wraps, and whether crossing it an odd number of times
// mirrors the other coordinate.
type traits struct {
	wrapX, wrapY     bool
	xFlipsY, yFlipsX bool
}

var modeTraits = map[rule.Boundary]traits{
	rule.Plane:           {},
	rule.CylinderX:       {wrapX: true},
	rule.CylinderY:       {wrapY: true},
	rule.Torus:           {wrapX: true, wrapY: true},
	rule.MobiusX:         {wrapX: true, xFlipsY: true},
	rule.MobiusY:         {wrapY: true, yFlipsX: true},
	rule.KleinX:          {wrapX: true, wrapY: true, xFlipsY: true},
	rule.KleinY:          {wrapX: true, wrapY: true, yFlipsX: true},
	rule.ProjectivePlane: {wrapX: true, wrapY: true, xFlipsY: true, yFlipsX: true},
}

// Resolve maps a requested (x, y), possibly out of bounds, to an in-bounds
// cell under the given boundary mode. ok is false when the coordinate falls
// off a non-wrapping edge; callers treat that as a dead cell.
//
// Flip parity is the parity of the wrap count, not merely "did wrap": an
// extended-template offset can cross a narrow axis twice in one call and
// land unmirrored.
func Resolve(x, y, w, h int, b rule.Boundary) (int, int, bool) {
	t, known := modeTraits[b]
	if !known {
		return 0, 0, false
	}

	wx := 0
	if x < 0 || x >= w {
		if !t.wrapX {
			return 0, 0, false
		}
		wx = floorDiv(x, w)
		x -= wx * w
	}
	wy := 0
	if y < 0 || y >= h {
		if !t.wrapY {
			return 0, 0, false
		}
		wy = floorDiv(y, h)
		y -= wy * h
	}

	if wx&1 != 0 && t.xFlipsY {
		y = h - 1 - y
	}
	if wy&1 != 0 && t.yFlipsX {
		x = w - 1 - x
	}
	return x, y, true
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
