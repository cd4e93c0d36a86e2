package lattice

import "vital-ca/internal/rule"

// Offset is a relative (dx, dy) step from a cell to one of its neighbors.
type Offset struct {
	DX, DY int
}

var mooreOffsets = []Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var vonNeumannOffsets = []Offset{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
}

// extendedMooreOffsets is the full 5x5 window minus the center.
var extendedMooreOffsets = buildExtendedMoore()

func buildExtendedMoore() []Offset {
	out := make([]Offset, 0, 24)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Offset{dx, dy})
		}
	}
	return out
}

// Hex templates use offset coordinates with alternate rows shifted half a
// cell to the right, so the diagonal offsets depend on row parity: cells in
// even rows reach up/down-right, cells in odd rows reach up/down-left. The
// left/right neighbors (±1, 0) are parity-independent.
var hexEvenOffsets = []Offset{
	{0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{0, 1}, {1, 1},
}

var hexOddOffsets = []Offset{
	{-1, -1}, {0, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1},
}

// Extended hex adds the 12-cell second ring, derived from the axial ring of
// radius two converted back to offset coordinates per parity.
var hexExtEvenOffsets = append(append([]Offset{}, hexEvenOffsets...),
	Offset{2, 0}, Offset{2, -1}, Offset{1, -2}, Offset{0, -2},
	Offset{-1, -2}, Offset{-1, -1}, Offset{-2, 0}, Offset{-1, 1},
	Offset{-1, 2}, Offset{0, 2}, Offset{1, 2}, Offset{2, 1},
)

var hexExtOddOffsets = append(append([]Offset{}, hexOddOffsets...),
	Offset{2, 0}, Offset{1, -1}, Offset{1, -2}, Offset{0, -2},
	Offset{-1, -2}, Offset{-2, -1}, Offset{-2, 0}, Offset{-2, 1},
	Offset{-1, 2}, Offset{0, 2}, Offset{1, 2}, Offset{1, 1},
)

// Offsets returns the neighbor template for a cell in row y. The returned
// slice is shared and must not be mutated.
func Offsets(n rule.Neighborhood, y int) []Offset {
	switch n {
	case rule.Moore:
		return mooreOffsets
	case rule.VonNeumann:
		return vonNeumannOffsets
	case rule.ExtendedMoore:
		return extendedMooreOffsets
	case rule.Hexagonal:
		if y&1 == 1 {
			return hexOddOffsets
		}
		return hexEvenOffsets
	case rule.ExtendedHexagonal:
		if y&1 == 1 {
			return hexExtOddOffsets
		}
		return hexExtEvenOffsets
	}
	return nil
}
