package vitalife

import (
	"strconv"
	"strings"

	"vital-ca/internal/rule"
	"vital-ca/internal/vitality"
)

// Config controls the vitalife simulation. Rule notation, tokens, and curve
// anchors are parsed leniently: malformed values fall back to the defaults.
type Config struct {
	Width  int
	Height int

	Seed int64

	Rule rule.Rule

	// Density is the alive probability used by the random seed.
	Density float64
	// IncludeDecay seeds a portion of non-alive cells into decay states.
	IncludeDecay bool

	// CurveAnchors define the vitality influence curve. Empty means the
	// curve is flat zero and decay states do not influence counting.
	CurveAnchors []vitality.Anchor

	// Workers bounds the parallel row bands per step; 0 picks NumCPU.
	Workers int
}

// DefaultConfig returns the standard configuration: Conway's Life on a
// 256x256 torus with no vitality influence.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Seed:    1337,
		Rule:    rule.Conway(),
		Density: 0.25,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := rule.ParseBS(v); err == nil {
			parsed.Neighborhood = c.Rule.Neighborhood
			parsed.Boundary = c.Rule.Boundary
			c.Rule = parsed
		}
	}
	if v, ok := cfg["states"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 && parsed <= rule.MaxStates {
			c.Rule.States = parsed
		}
	}
	if v, ok := cfg["neighborhood"]; ok {
		if parsed, err := rule.ParseNeighborhood(v); err == nil {
			c.Rule.Neighborhood = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := rule.ParseBoundary(v); err == nil {
			c.Rule.Boundary = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["include_decay"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.IncludeDecay = parsed
		}
	}
	if v, ok := cfg["curve"]; ok {
		if anchors, err := ParseAnchors(v); err == nil {
			c.CurveAnchors = anchors
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// ParseAnchors parses a curve spec of the form "0:0,0.5:1.5,1:1" into
// anchor points.
func ParseAnchors(s string) ([]vitality.Anchor, error) {
	parts := strings.Split(s, ",")
	anchors := make([]vitality.Anchor, 0, len(parts))
	for _, part := range parts {
		xy := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(xy) != 2 {
			return nil, strconv.ErrSyntax
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, vitality.Anchor{X: x, Y: y})
	}
	return anchors, nil
}
