package vitalife

import (
	"testing"

	"vital-ca/internal/rule"
)

func TestFromMapParsesFullConfig(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":             "48",
		"h":             "32",
		"seed":          "7",
		"rule":          "B2/S/G4",
		"neighborhood":  "hexagonal",
		"boundary":      "kleinX",
		"density":       "0.4",
		"include_decay": "true",
		"curve":         "0:0,0.5:1.5,1:1",
		"workers":       "3",
	})

	if cfg.Width != 48 || cfg.Height != 32 || cfg.Seed != 7 {
		t.Fatalf("dimensions/seed parsed as %dx%d seed %d", cfg.Width, cfg.Height, cfg.Seed)
	}
	if cfg.Rule.Birth != 1<<2 || cfg.Rule.Survive != 0 || cfg.Rule.States != 4 {
		t.Fatalf("rule parsed as %+v", cfg.Rule)
	}
	if cfg.Rule.Neighborhood != rule.Hexagonal || cfg.Rule.Boundary != rule.KleinX {
		t.Fatalf("tokens parsed as %s/%s", cfg.Rule.Neighborhood, cfg.Rule.Boundary)
	}
	if cfg.Density != 0.4 || !cfg.IncludeDecay || cfg.Workers != 3 {
		t.Fatalf("options parsed as density=%f decay=%v workers=%d", cfg.Density, cfg.IncludeDecay, cfg.Workers)
	}
	if len(cfg.CurveAnchors) != 3 || cfg.CurveAnchors[1].Y != 1.5 {
		t.Fatalf("curve parsed as %v", cfg.CurveAnchors)
	}
}

func TestFromMapIgnoresMalformedValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":            "zero",
		"rule":         "nonsense",
		"neighborhood": "octagonal",
		"boundary":     "donut",
		"density":      "2.5",
		"curve":        "broken",
	})
	if cfg.Width != def.Width || cfg.Rule != def.Rule || cfg.Density != def.Density {
		t.Fatalf("malformed values must fall back to defaults, got %+v", cfg)
	}
	if cfg.CurveAnchors != nil {
		t.Fatalf("malformed curve must stay empty, got %v", cfg.CurveAnchors)
	}
}

func TestStatesOverrideAppliesAfterRule(t *testing.T) {
	cfg := FromMap(map[string]string{
		"rule":   "B3/S23",
		"states": "9",
	})
	if cfg.Rule.States != 9 {
		t.Fatalf("states override ignored, got %d", cfg.Rule.States)
	}
}

func TestParseAnchorsRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "0", "0:a", "x:1", "0:0,1"} {
		if _, err := ParseAnchors(s); err == nil {
			t.Fatalf("%q must be rejected", s)
		}
	}
	anchors, err := ParseAnchors(" 0:0 , 1:1 ")
	if err != nil {
		t.Fatal(err)
	}
	if len(anchors) != 2 || anchors[1].X != 1 {
		t.Fatalf("anchors = %v", anchors)
	}
}
