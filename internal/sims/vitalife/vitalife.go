package vitalife

import (
	"runtime"
	"sync"

	"vital-ca/internal/core"
	"vital-ca/internal/lattice"
	"vital-ca/internal/rule"
	"vital-ca/internal/topology"
	"vital-ca/internal/vitality"

	pkgcore "vital-ca/pkg/core"
)

// BrushShape selects the footprint of a paint request.
type BrushShape string

const (
	// ShapeCircle paints a filled disk.
	ShapeCircle BrushShape = "circle"
	// ShapeSquare paints a filled axis-aligned square.
	ShapeSquare BrushShape = "square"
)

// Sim runs a generalized B/S + decay-chain automaton with an optional
// vitality influence curve. The next generation is a pure function of the
// front buffer, the rule, and the baked curve table; cells are evaluated in
// parallel row bands and made visible atomically by the buffer commit.
type Sim struct {
	cfg Config

	rul   rule.Rule
	buf   *core.Buffers
	curve *vitality.Curve

	// flatCurve short-circuits the aggregator to the classical integer
	// count when decay states cannot contribute.
	flatCurve bool

	workers int
	rng     *pkgcore.RNG
}

// New returns a vitalife simulation with the provided dimensions using
// defaults for everything else.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation configured from the provided options.
// Invalid rule or curve settings fall back to the defaults rather than
// producing a broken sim; the explicit setters report errors instead.
func NewWithConfig(cfg Config) *Sim {
	if cfg.Rule.Validate() != nil {
		cfg.Rule = rule.Conway()
	}
	buf, err := core.NewBuffers(cfg.Width, cfg.Height)
	if err != nil {
		cfg.Width, cfg.Height = 1, 1
		buf, _ = core.NewBuffers(1, 1)
	}
	s := &Sim{
		cfg:     cfg,
		rul:     cfg.Rule,
		buf:     buf,
		workers: cfg.Workers,
		rng:     pkgcore.NewRNG(cfg.Seed),
	}
	if len(cfg.CurveAnchors) > 0 {
		if curve, err := vitality.NewCurve(cfg.CurveAnchors); err == nil {
			s.curve = curve
		}
	}
	if s.curve == nil {
		s.curve = vitality.Flat(0)
	}
	s.flatCurve = s.curve.Table().Zero()
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "vitalife" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.buf.W, H: s.buf.H} }

// Cells exposes the front buffer. Contents are stable between steps.
func (s *Sim) Cells() []uint16 { return s.buf.Front() }

// Generation reports the number of completed steps.
func (s *Sim) Generation() uint64 { return s.buf.Generation() }

// Rule returns the active rule value.
func (s *Sim) Rule() rule.Rule { return s.rul }

// Curve returns the active vitality curve.
func (s *Sim) Curve() *vitality.Curve { return s.curve }

// Buffers exposes the underlying buffer pair for seed sources.
func (s *Sim) Buffers() *core.Buffers { return s.buf }

// SetRule replaces the active rule between steps. The front buffer is
// preserved; the back buffer is rewritten wholesale on the next step. An
// invalid rule is rejected and the previous rule stays active.
func (s *Sim) SetRule(r rule.Rule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.rul = r
	return nil
}

// SetCurve replaces the vitality curve between steps, rebaking the sample
// table. Invalid anchors are rejected and the previous curve stays active.
func (s *Sim) SetCurve(anchors []vitality.Anchor) error {
	curve, err := vitality.NewCurve(anchors)
	if err != nil {
		return err
	}
	s.curve = curve
	s.flatCurve = curve.Table().Zero()
	return nil
}

// Resize reallocates the grid between steps. Prior contents are lost.
func (s *Sim) Resize(w, h int) error {
	if err := s.buf.Resize(w, h); err != nil {
		return err
	}
	s.cfg.Width, s.cfg.Height = w, h
	return nil
}

// Reset reseeds the front buffer using deterministic randomness and
// restarts the generation counter.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng = pkgcore.NewRNG(effective)
	s.buf.Randomize(s.rng, s.cfg.Density, s.rul.States, s.cfg.IncludeDecay)
	s.buf.ResetGeneration()
}

// GetCell returns the front-buffer state at (x, y).
func (s *Sim) GetCell(x, y int) uint16 {
	return s.buf.ReadFront(s.buf.Index(x, y))
}

// SetCell writes a front-buffer state at (x, y). Legal only between steps.
func (s *Sim) SetCell(x, y int, v uint16) {
	s.buf.Front()[s.buf.Index(x, y)] = v
}

// Snapshot copies the front buffer.
func (s *Sim) Snapshot() []uint16 { return s.buf.Snapshot() }

// AliveCount returns the number of fully-alive cells.
func (s *Sim) AliveCount() int { return s.buf.AliveCount() }

// Paint writes state into the front buffer for every cell inside the brush
// footprint, each with the given probability. Legal only between steps.
func (s *Sim) Paint(cx, cy, radius int, state uint16, shape BrushShape, density float64) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= s.buf.H {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= s.buf.W {
				continue
			}
			if shape == ShapeCircle && dx*dx+dy*dy > r2 {
				continue
			}
			if density < 1 && s.rng.Float64() >= density {
				continue
			}
			s.buf.Front()[s.buf.Index(x, y)] = state
		}
	}
}

// Step advances the automaton by one generation: every cell's next state is
// computed from the front buffer in parallel row bands, then the buffers
// swap roles atomically.
func (s *Sim) Step() {
	h := s.buf.H
	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		s.stepRows(0, h)
		s.buf.CommitStep()
		return
	}

	var wg sync.WaitGroup
	band := (h + workers - 1) / workers
	for y0 := 0; y0 < h; y0 += band {
		y1 := y0 + band
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			s.stepRows(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
	s.buf.CommitStep()
}

func (s *Sim) stepRows(y0, y1 int) {
	states := uint16(s.rul.States)
	for y := y0; y < y1; y++ {
		row := y * s.buf.W
		for x := 0; x < s.buf.W; x++ {
			idx := row + x
			n := s.neighborCount(x, y)
			cur := s.buf.ReadFront(idx)

			var next uint16
			switch {
			case cur == 0:
				if s.rul.BirthAt(n) {
					next = 1
				}
			case cur == 1:
				if s.rul.SurviveAt(n) {
					next = 1
				} else if states > 2 {
					next = 2
				}
			default:
				next = cur + 1
				if next >= states {
					next = 0
				}
			}
			s.buf.WriteBack(idx, next)
		}
	}
}

// neighborCount walks the lattice template around (x, y), resolves each
// offset through the boundary topology, and sums per-neighbor contributions.
// Alive neighbors weigh 1; decay neighbors weigh the curve sample at their
// normalized age. The sum is clamped to [0, maxCount] and truncated so the
// integer-indexed rule masks keep their classical meaning.
func (s *Sim) neighborCount(x, y int) int {
	offsets := lattice.Offsets(s.rul.Neighborhood, y)
	w, h := s.buf.W, s.buf.H

	if s.rul.States == 2 || s.flatCurve {
		n := 0
		for _, off := range offsets {
			nx, ny, ok := topology.Resolve(x+off.DX, y+off.DY, w, h, s.rul.Boundary)
			if !ok {
				continue
			}
			if s.buf.ReadFront(ny*w+nx) == 1 {
				n++
			}
		}
		return n
	}

	table := s.curve.Table()
	// Vitality is the fraction of the decay chain remaining: 1 just after
	// entering decay (s == 2), approaching 0 at the chain's end.
	denom := float64(s.rul.States - 2)
	if denom < 1 {
		denom = 1
	}
	sum := 0.0
	for _, off := range offsets {
		nx, ny, ok := topology.Resolve(x+off.DX, y+off.DY, w, h, s.rul.Boundary)
		if !ok {
			continue
		}
		c := s.buf.ReadFront(ny*w + nx)
		switch {
		case c == 1:
			sum += 1
		case c >= 2:
			sum += table.Sample(float64(s.rul.States-int(c)) / denom)
		}
	}
	if sum < 0 {
		return 0
	}
	max := float64(s.rul.Neighborhood.MaxCount())
	if sum > max {
		sum = max
	}
	return int(sum)
}

// ParameterControls exposes the HUD-adjustable knobs.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "states", Label: "states", Type: core.ParamTypeInt,
			Step: 1, Min: 2, Max: rule.MaxStates, HasMin: true, HasMax: true,
		},
		{
			Key: "density", Label: "seed density", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter updates integer tunables from the HUD.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "states":
		if value < 2 {
			value = 2
		}
		if value > rule.MaxStates {
			value = rule.MaxStates
		}
		r := s.rul
		r.States = value
		return s.SetRule(r) == nil
	}
	return false
}

// SetFloatParameter updates float tunables from the HUD.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		s.cfg.Density = value
		return true
	}
	return false
}

// IntParameter reports integer tunables for HUD display.
func (s *Sim) IntParameter(key string) (int, bool) {
	if key == "states" {
		return s.rul.States, true
	}
	return 0, false
}

// FloatParameter reports float tunables for HUD display.
func (s *Sim) FloatParameter(key string) (float64, bool) {
	if key == "density" {
		return s.cfg.Density, true
	}
	return 0, false
}

func init() {
	core.Register("vitalife", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
