package seed

import (
	"fmt"

	"vital-ca/internal/core"

	pkgcore "vital-ca/pkg/core"
)

// Kind enumerates the available seed shapes.
type Kind string

const (
	// Random fills cells independently at the source density.
	Random Kind = "random"
	// Disk fills a centered filled circle.
	Disk Kind = "disk"
	// Ring fills a centered annulus.
	Ring Kind = "ring"
	// Cross fills a centered symmetric plus shape.
	Cross Kind = "cross"
	// Grid stamps a literal row/column picture at the center.
	Grid Kind = "grid"
	// Pattern stamps a named pattern at the center, optionally tiled.
	Pattern Kind = "pattern"
)

// Source describes initial front-buffer contents.
type Source struct {
	Kind Kind

	// Density applies to Random and as per-cell probability inside shaped
	// seeds; 0 is treated as 1 for the shaped kinds.
	Density float64

	// IncludeDecay seeds some non-alive cells into decay states (Random).
	IncludeDecay bool

	// RadiusFrac sizes Disk and Ring relative to half the short grid axis.
	RadiusFrac float64
	// Thickness is the ring band width in cells. Cross arms extend
	// Thickness/2 cells to each side of the center line, so their width is
	// always odd.
	Thickness int

	// Rows is the literal picture for Grid: '#' or '1' is alive, anything
	// else dead.
	Rows []string

	// Name selects a pattern for Pattern.
	Name string
	// Tile repeats the pattern across the grid at Spacing-cell intervals.
	Tile    bool
	Spacing int
}

// Apply writes the seed into the front buffer. The buffer is cleared first.
func (s Source) Apply(buf *core.Buffers, states int, rng *pkgcore.RNG) error {
	switch s.Kind {
	case Random:
		buf.Randomize(rng, s.Density, states, s.IncludeDecay)
		return nil
	case Disk:
		buf.Clear()
		s.applyDisk(buf, rng, false)
		return nil
	case Ring:
		buf.Clear()
		s.applyDisk(buf, rng, true)
		return nil
	case Cross:
		buf.Clear()
		s.applyCross(buf, rng)
		return nil
	case Grid:
		buf.Clear()
		stampRows(buf, s.Rows, buf.W/2-rowsWidth(s.Rows)/2, buf.H/2-len(s.Rows)/2)
		return nil
	case Pattern:
		rows, ok := patterns[s.Name]
		if !ok {
			return fmt.Errorf("unknown pattern %q", s.Name)
		}
		buf.Clear()
		if s.Tile {
			s.tileRows(buf, rows)
		} else {
			stampRows(buf, rows, buf.W/2-rowsWidth(rows)/2, buf.H/2-len(rows)/2)
		}
		return nil
	}
	return fmt.Errorf("unknown seed kind %q", string(s.Kind))
}

func (s Source) density() float64 {
	if s.Density <= 0 || s.Density > 1 {
		return 1
	}
	return s.Density
}

func (s Source) radius(buf *core.Buffers) int {
	short := buf.W
	if buf.H < short {
		short = buf.H
	}
	frac := s.RadiusFrac
	if frac <= 0 || frac > 1 {
		frac = 0.5
	}
	r := int(float64(short) / 2 * frac)
	if r < 1 {
		r = 1
	}
	return r
}

func (s Source) applyDisk(buf *core.Buffers, rng *pkgcore.RNG, hollow bool) {
	cx, cy := buf.W/2, buf.H/2
	r := s.radius(buf)
	thickness := s.Thickness
	if thickness < 1 {
		thickness = 1
	}
	inner := r - thickness
	den := s.density()
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= buf.H {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			x := cx + dx
			if x < 0 || x >= buf.W {
				continue
			}
			d2 := dx*dx + dy*dy
			if d2 > r*r {
				continue
			}
			if hollow && d2 <= inner*inner {
				continue
			}
			if den < 1 && rng.Float64() >= den {
				continue
			}
			buf.Front()[buf.Index(x, y)] = 1
		}
	}
}

func (s Source) applyCross(buf *core.Buffers, rng *pkgcore.RNG) {
	cx, cy := buf.W/2, buf.H/2
	half := s.Thickness / 2
	den := s.density()
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			if absInt(x-cx) > half && absInt(y-cy) > half {
				continue
			}
			if den < 1 && rng.Float64() >= den {
				continue
			}
			buf.Front()[buf.Index(x, y)] = 1
		}
	}
}

func (s Source) tileRows(buf *core.Buffers, rows []string) {
	spacing := s.Spacing
	pw, ph := rowsWidth(rows), len(rows)
	if spacing < 1 {
		spacing = 1
	}
	strideX := pw + spacing
	strideY := ph + spacing
	for y := 0; y < buf.H; y += strideY {
		for x := 0; x < buf.W; x += strideX {
			stampRows(buf, rows, x, y)
		}
	}
}

func stampRows(buf *core.Buffers, rows []string, ox, oy int) {
	for dy, row := range rows {
		y := oy + dy
		if y < 0 || y >= buf.H {
			continue
		}
		for dx := 0; dx < len(row); dx++ {
			x := ox + dx
			if x < 0 || x >= buf.W {
				continue
			}
			if row[dx] == '#' || row[dx] == '1' {
				buf.Front()[buf.Index(x, y)] = 1
			}
		}
	}
}

func rowsWidth(rows []string) int {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// patterns is the built-in pattern library, drawn with '#' for alive cells.
var patterns = map[string][]string{
	"blinker": {
		"###",
	},
	"glider": {
		".#.",
		"..#",
		"###",
	},
	"toad": {
		".###",
		"###.",
	},
	"beacon": {
		"##..",
		"##..",
		"..##",
		"..##",
	},
	"r-pentomino": {
		".##",
		"##.",
		".#.",
	},
	"lwss": {
		".####",
		"#...#",
		"....#",
		"#..#.",
	},
	"pulsar": {
		"..###...###..",
		".............",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		"..###...###..",
		".............",
		"..###...###..",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		".............",
		"..###...###..",
	},
}

// Patterns lists the built-in pattern names.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	return names
}
