package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width        int
	Height       int
	Rule         string
	States       int
	Neighborhood string
	Boundary     string
	Density      float64
	IncludeDecay bool
	Curve        string
	Workers      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:          "vitalife",
		Scale:        3,
		TPS:          60,
		Seed:         42,
		Width:        256,
		Height:       256,
		Rule:         "B3/S23",
		Neighborhood: "moore",
		Boundary:     "torus",
		Density:      0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation, e.g. B3/S23 or B2/S/G4")
	fs.IntVar(&c.States, "states", c.States, "decay-chain depth override (0 keeps the rule's)")
	fs.StringVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "moore | vonNeumann | extendedMoore | hexagonal | extendedHexagonal")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "plane | cylinderX | cylinderY | torus | mobiusX | mobiusY | kleinX | kleinY | projectivePlane")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for random seeding")
	fs.BoolVar(&c.IncludeDecay, "include-decay", c.IncludeDecay, "seed some cells into decay states")
	fs.StringVar(&c.Curve, "curve", c.Curve, "vitality anchors, e.g. 0:0,0.5:1.2,1:1")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evaluated in parallel (0 = NumCPU)")
}

// SimOptions renders the config as the string map sim factories consume.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":             strconv.Itoa(c.Width),
		"h":             strconv.Itoa(c.Height),
		"seed":          strconv.FormatInt(c.Seed, 10),
		"rule":          c.Rule,
		"neighborhood":  c.Neighborhood,
		"boundary":      c.Boundary,
		"density":       strconv.FormatFloat(c.Density, 'f', -1, 64),
		"include_decay": strconv.FormatBool(c.IncludeDecay),
		"workers":       strconv.Itoa(c.Workers),
	}
	if c.States > 0 {
		opts["states"] = strconv.Itoa(c.States)
	}
	if c.Curve != "" {
		opts["curve"] = c.Curve
	}
	return opts
}
