package seed

import (
	"testing"

	"vital-ca/internal/core"

	pkgcore "vital-ca/pkg/core"
)

func newBuffers(t *testing.T, w, h int) *core.Buffers {
	t.Helper()
	buf, err := core.NewBuffers(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func aliveSet(buf *core.Buffers) map[[2]int]bool {
	alive := map[[2]int]bool{}
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			if buf.ReadFront(buf.Index(x, y)) == 1 {
				alive[[2]int{x, y}] = true
			}
		}
	}
	return alive
}

func TestBlinkerStampsCentered(t *testing.T) {
	buf := newBuffers(t, 5, 5)
	src := Source{Kind: Pattern, Name: "blinker"}
	if err := src.Apply(buf, 2, pkgcore.NewRNG(1)); err != nil {
		t.Fatal(err)
	}
	want := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	got := aliveSet(buf)
	if len(got) != len(want) {
		t.Fatalf("alive cells %v, expected %v", got, want)
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("missing alive cell (%d,%d)", c[0], c[1])
		}
	}
}

func TestUnknownPatternIsRejected(t *testing.T) {
	buf := newBuffers(t, 8, 8)
	src := Source{Kind: Pattern, Name: "galaxy"}
	if err := src.Apply(buf, 2, pkgcore.NewRNG(1)); err == nil {
		t.Fatal("unknown pattern must be rejected")
	}
}

func TestTilingRepeatsPattern(t *testing.T) {
	buf := newBuffers(t, 20, 20)
	src := Source{Kind: Pattern, Name: "glider", Tile: true, Spacing: 3}
	if err := src.Apply(buf, 2, pkgcore.NewRNG(1)); err != nil {
		t.Fatal(err)
	}
	// The glider has 5 alive cells; tiling a 20x20 grid at stride 6 stamps
	// a 4x4 array of them, minus edge clipping.
	alive := len(aliveSet(buf))
	if alive < 5*4 {
		t.Fatalf("tiling produced only %d alive cells", alive)
	}
}

func TestDiskAndRingShapes(t *testing.T) {
	disk := newBuffers(t, 21, 21)
	if err := (Source{Kind: Disk, RadiusFrac: 0.5}).Apply(disk, 2, pkgcore.NewRNG(1)); err != nil {
		t.Fatal(err)
	}
	if disk.ReadFront(disk.Index(10, 10)) != 1 {
		t.Fatal("disk must cover the center")
	}
	if disk.ReadFront(disk.Index(0, 0)) != 0 {
		t.Fatal("disk must not reach the corners")
	}

	ring := newBuffers(t, 21, 21)
	if err := (Source{Kind: Ring, RadiusFrac: 0.5, Thickness: 2}).Apply(ring, 2, pkgcore.NewRNG(1)); err != nil {
		t.Fatal(err)
	}
	if ring.ReadFront(ring.Index(10, 10)) != 0 {
		t.Fatal("ring interior must stay empty")
	}
	if ring.ReadFront(ring.Index(10, 5)) != 1 {
		t.Fatal("ring band must be filled")
	}
}

func TestCrossCoversAxesOnly(t *testing.T) {
	buf := newBuffers(t, 11, 11)
	if err := (Source{Kind: Cross, Thickness: 1}).Apply(buf, 2, pkgcore.NewRNG(1)); err != nil {
		t.Fatal(err)
	}
	if buf.ReadFront(buf.Index(5, 0)) != 1 || buf.ReadFront(buf.Index(0, 5)) != 1 {
		t.Fatal("cross arms must span the grid")
	}
	if buf.ReadFront(buf.Index(0, 0)) != 0 {
		t.Fatal("cross must leave the corners empty")
	}
}

func TestLiteralGridStamps(t *testing.T) {
	buf := newBuffers(t, 7, 7)
	src := Source{Kind: Grid, Rows: []string{"#.#", ".#.", "#.#"}}
	if err := src.Apply(buf, 2, pkgcore.NewRNG(1)); err != nil {
		t.Fatal(err)
	}
	got := aliveSet(buf)
	want := [][2]int{{2, 2}, {4, 2}, {3, 3}, {2, 4}, {4, 4}}
	if len(got) != len(want) {
		t.Fatalf("alive cells %v", got)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("missing alive cell (%d,%d)", c[0], c[1])
		}
	}
}

func TestRandomSeedIsDeterministic(t *testing.T) {
	a := newBuffers(t, 16, 16)
	b := newBuffers(t, 16, 16)
	src := Source{Kind: Random, Density: 0.3, IncludeDecay: true}
	if err := src.Apply(a, 5, pkgcore.NewRNG(77)); err != nil {
		t.Fatal(err)
	}
	if err := src.Apply(b, 5, pkgcore.NewRNG(77)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < a.Len(); i++ {
		if a.ReadFront(i) != b.ReadFront(i) {
			t.Fatalf("same seed diverged at cell %d", i)
		}
	}
}

func TestPatternsAreListed(t *testing.T) {
	names := Patterns()
	if len(names) == 0 {
		t.Fatal("pattern library is empty")
	}
	seen := map[string]bool{}
	for _, name := range names {
		seen[name] = true
	}
	for _, want := range []string{"blinker", "glider", "pulsar"} {
		if !seen[want] {
			t.Fatalf("pattern %q missing from the library", want)
		}
	}
}
