package lattice

import (
	"testing"

	"vital-ca/internal/rule"
)

func TestTemplateSizesMatchMaxCounts(t *testing.T) {
	neighborhoods := []rule.Neighborhood{
		rule.Moore, rule.VonNeumann, rule.ExtendedMoore,
		rule.Hexagonal, rule.ExtendedHexagonal,
	}
	for _, n := range neighborhoods {
		for y := 0; y < 2; y++ {
			offsets := Offsets(n, y)
			if len(offsets) != n.MaxCount() {
				t.Fatalf("%s row %d: %d offsets, expected %d", n, y, len(offsets), n.MaxCount())
			}
		}
	}
}

func TestTemplatesExcludeCenterAndDuplicates(t *testing.T) {
	neighborhoods := []rule.Neighborhood{
		rule.Moore, rule.VonNeumann, rule.ExtendedMoore,
		rule.Hexagonal, rule.ExtendedHexagonal,
	}
	for _, n := range neighborhoods {
		for y := 0; y < 2; y++ {
			seen := map[Offset]bool{}
			for _, off := range Offsets(n, y) {
				if off.DX == 0 && off.DY == 0 {
					t.Fatalf("%s row %d includes the center", n, y)
				}
				if seen[off] {
					t.Fatalf("%s row %d repeats offset (%d,%d)", n, y, off.DX, off.DY)
				}
				seen[off] = true
			}
		}
	}
}

func TestHexParityReachesOppositeDiagonals(t *testing.T) {
	even := map[Offset]bool{}
	for _, off := range Offsets(rule.Hexagonal, 0) {
		even[off] = true
	}
	odd := map[Offset]bool{}
	for _, off := range Offsets(rule.Hexagonal, 1) {
		odd[off] = true
	}

	for _, off := range []Offset{{0, -1}, {1, -1}, {0, 1}, {1, 1}} {
		if !even[off] {
			t.Fatalf("even rows must reach (%d,%d)", off.DX, off.DY)
		}
	}
	for _, off := range []Offset{{-1, -1}, {0, -1}, {-1, 1}, {0, 1}} {
		if !odd[off] {
			t.Fatalf("odd rows must reach (%d,%d)", off.DX, off.DY)
		}
	}
	if even[Offset{-1, -1}] || odd[Offset{1, 1}] {
		t.Fatal("hex parity templates overlap on the wrong diagonals")
	}
}

func TestExtendedMooreCoversFiveByFive(t *testing.T) {
	offsets := Offsets(rule.ExtendedMoore, 3)
	for _, off := range offsets {
		if off.DX < -2 || off.DX > 2 || off.DY < -2 || off.DY > 2 {
			t.Fatalf("offset (%d,%d) outside the 5x5 window", off.DX, off.DY)
		}
	}
}

func TestExtendedHexContainsInnerRing(t *testing.T) {
	for y := 0; y < 2; y++ {
		ext := map[Offset]bool{}
		for _, off := range Offsets(rule.ExtendedHexagonal, y) {
			ext[off] = true
		}
		for _, off := range Offsets(rule.Hexagonal, y) {
			if !ext[off] {
				t.Fatalf("row %d: extended hex misses inner offset (%d,%d)", y, off.DX, off.DY)
			}
		}
	}
}

func TestUnknownNeighborhoodHasNoTemplate(t *testing.T) {
	if Offsets(rule.Neighborhood("triangular"), 0) != nil {
		t.Fatal("unknown neighborhood must yield no offsets")
	}
}
