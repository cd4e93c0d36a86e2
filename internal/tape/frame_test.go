package tape

import (
	"slices"
	"testing"

	pkgcore "vital-ca/pkg/core"
)

func TestBitsetRoundTripForTwoStateGrids(t *testing.T) {
	const w, h = 19, 7
	cells := make([]uint16, w*h)
	rng := pkgcore.NewRNG(42)
	pkgcore.FillDensity(rng, cells, 0.4)

	frame, err := Pack(cells, w, h, 12)
	if err != nil {
		t.Fatal(err)
	}
	back, err := frame.Unpack()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cells, back) {
		t.Fatal("pack/unpack must round-trip two-state grids exactly")
	}
	if frame.Generation != 12 {
		t.Fatalf("generation = %d", frame.Generation)
	}
}

func TestDecayStatesProjectToDead(t *testing.T) {
	cells := []uint16{0, 1, 2, 3, 1, 7}
	frame, err := Pack(cells, 3, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	back, err := frame.Unpack()
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0, 1, 0, 0, 1, 0}
	if !slices.Equal(back, want) {
		t.Fatalf("alive projection = %v, expected %v", back, want)
	}
	if frame.AliveCount() != 2 {
		t.Fatalf("alive count = %d", frame.AliveCount())
	}
}

func TestPackRejectsMismatchedDimensions(t *testing.T) {
	if _, err := Pack(make([]uint16, 10), 3, 4, 0); err == nil {
		t.Fatal("snapshot length mismatch must be rejected")
	}
	if _, err := Pack(nil, 0, 4, 0); err == nil {
		t.Fatal("non-positive width must be rejected")
	}
	bad := Frame{W: 4, H: 4, Bits: []byte{0}}
	if _, err := bad.Unpack(); err == nil {
		t.Fatal("short bitset must be rejected")
	}
}
