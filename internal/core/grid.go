package core

import (
	"fmt"

	pkgcore "vital-ca/pkg/core"
)

// Buffers owns the double-buffered cell storage for a simulation grid.
// The front buffer holds the output of the last completed step and is the
// only buffer external observers ever see; the back buffer collects the
// next generation and becomes visible atomically at CommitStep.
type Buffers struct {
	W, H       int
	front      []uint16
	back       []uint16
	generation uint64
}

// NewBuffers allocates front and back buffers with the given dimensions.
func NewBuffers(w, h int) (*Buffers, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &Buffers{
		W:     w,
		H:     h,
		front: make([]uint16, w*h),
		back:  make([]uint16, w*h),
	}, nil
}

// Index returns the row-major linear index for coordinates (x, y).
func (b *Buffers) Index(x, y int) int { return y*b.W + x }

// Len returns the cell count of each buffer.
func (b *Buffers) Len() int { return b.W * b.H }

// ReadFront returns the cell state at linear index i as of the last step.
func (b *Buffers) ReadFront(i int) uint16 { return b.front[i] }

// WriteBack records the next-generation state at linear index i. An
// out-of-range index is a contract violation and panics via the slice bounds
// check; each index must be written exactly once per step.
func (b *Buffers) WriteBack(i int, s uint16) { b.back[i] = s }

// Front exposes the front buffer for render and seed paths. Mutation is only
// legal between steps.
func (b *Buffers) Front() []uint16 { return b.front }

// CommitStep swaps the front and back buffers and bumps the generation
// counter. It must not overlap any cell evaluation.
func (b *Buffers) CommitStep() {
	b.front, b.back = b.back, b.front
	b.generation++
}

// Generation reports the number of completed steps.
func (b *Buffers) Generation() uint64 { return b.generation }

// ResetGeneration restarts the step counter, marking the start of a new run.
func (b *Buffers) ResetGeneration() { b.generation = 0 }

// Snapshot copies the front buffer. The copy is stable regardless of later
// steps.
func (b *Buffers) Snapshot() []uint16 {
	out := make([]uint16, len(b.front))
	copy(out, b.front)
	return out
}

// AliveCount returns the number of fully-alive cells (state 1) in the front
// buffer. Decay states are not counted.
func (b *Buffers) AliveCount() int {
	n := 0
	for _, s := range b.front {
		if s == 1 {
			n++
		}
	}
	return n
}

// Clear zeroes the front buffer.
func (b *Buffers) Clear() {
	for i := range b.front {
		b.front[i] = 0
	}
}

// Fill writes s into the front-buffer rectangle [x0,x1] x [y0,y1], clipped
// to the grid.
func (b *Buffers) Fill(x0, y0, x1, y1 int, s uint16) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= b.W {
		x1 = b.W - 1
	}
	if y1 >= b.H {
		y1 = b.H - 1
	}
	for y := y0; y <= y1; y++ {
		row := y * b.W
		for x := x0; x <= x1; x++ {
			b.front[row+x] = s
		}
	}
}

// Randomize initializes the front buffer: each cell becomes 1 with the given
// probability. When includeDecay is set and the rule has decay states,
// roughly a fifth of the remaining cells are seeded with a uniform decay
// value in [2, states) so decay coloring is visible from the first frame.
func (b *Buffers) Randomize(rng *pkgcore.RNG, density float64, states int, includeDecay bool) {
	for i := range b.front {
		if rng.Float64() < density {
			b.front[i] = 1
			continue
		}
		b.front[i] = 0
		if includeDecay && states > 2 && rng.Float64() < 0.2 {
			b.front[i] = rng.Uint16Range(2, uint16(states))
		}
	}
}

// Resize reallocates both buffers with new dimensions. Prior contents are
// lost and the generation counter restarts.
func (b *Buffers) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	b.W, b.H = w, h
	b.front = make([]uint16, w*h)
	b.back = make([]uint16, w*h)
	b.generation = 0
	return nil
}
