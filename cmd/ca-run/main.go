package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"vital-ca/internal/seed"
	"vital-ca/internal/sims/vitalife"
	"vital-ca/internal/tape"

	pkgcore "vital-ca/pkg/core"
)

func main() {
	width := flag.Int("w", 256, "grid width in cells")
	height := flag.Int("h", 256, "grid height in cells")
	seedVal := flag.Int64("seed", 1337, "seed for the initial state")
	ruleSpec := flag.String("rule", "B3/S23", "rule in B/S notation, e.g. B3/S23 or B2/S/G4")
	states := flag.Int("states", 0, "decay-chain depth override (0 keeps the rule's)")
	neighborhood := flag.String("neighborhood", "moore", "lattice template")
	boundary := flag.String("boundary", "torus", "boundary topology")
	density := flag.Float64("density", 0.25, "alive probability for random seeding")
	includeDecay := flag.Bool("include-decay", false, "seed some cells into decay states")
	curve := flag.String("curve", "", "vitality anchors, e.g. 0:0,0.5:1.2,1:1")
	workers := flag.Int("workers", 0, "row bands evaluated in parallel (0 = NumCPU)")
	pattern := flag.String("pattern", "", "stamp a named pattern instead of random seeding")
	tilePattern := flag.Bool("tile", false, "tile the pattern across the grid")
	spacing := flag.Int("spacing", 4, "tiling gap in cells")
	steps := flag.Int("steps", 1000, "generations to simulate")
	reportEvery := flag.Int("report-every", 100, "log the population every N generations (0 = off)")
	tapeBackend := flag.String("tape", "", "record frames to a tape backend: memory | sqlite")
	tapePath := flag.String("tape-path", "vital-ca.db", "sqlite tape database path")
	recordEvery := flag.Int("record-every", 1, "record every Nth generation to the tape")
	flag.Parse()

	opts := map[string]string{
		"w":             fmt.Sprint(*width),
		"h":             fmt.Sprint(*height),
		"seed":          fmt.Sprint(*seedVal),
		"rule":          *ruleSpec,
		"neighborhood":  *neighborhood,
		"boundary":      *boundary,
		"density":       fmt.Sprint(*density),
		"include_decay": fmt.Sprint(*includeDecay),
		"workers":       fmt.Sprint(*workers),
	}
	if *states > 0 {
		opts["states"] = fmt.Sprint(*states)
	}
	if *curve != "" {
		opts["curve"] = *curve
	}

	sim := vitalife.NewWithConfig(vitalife.FromMap(opts))
	if *pattern != "" {
		src := seed.Source{Kind: seed.Pattern, Name: *pattern, Tile: *tilePattern, Spacing: *spacing}
		if err := src.Apply(sim.Buffers(), sim.Rule().States, pkgcore.NewRNG(*seedVal)); err != nil {
			log.Fatalf("seed: %v", err)
		}
	} else {
		sim.Reset(*seedVal)
	}

	ctx := context.Background()
	var store tape.Store
	if *tapeBackend != "" {
		var err error
		store, err = tape.NewStore(*tapeBackend, *tapePath)
		if err != nil {
			log.Fatalf("tape: %v", err)
		}
		if err := store.Init(ctx); err != nil {
			log.Fatalf("tape: %v", err)
		}
		defer func() {
			if err := tape.CloseIfSupported(store); err != nil {
				log.Printf("tape close: %v", err)
			}
		}()
	}

	size := sim.Size()
	record := func() {
		if store == nil {
			return
		}
		gen := sim.Generation()
		if *recordEvery > 1 && gen%uint64(*recordEvery) != 0 {
			return
		}
		frame, err := tape.Pack(sim.Cells(), size.W, size.H, gen)
		if err != nil {
			log.Fatalf("tape pack: %v", err)
		}
		if err := store.Append(ctx, frame); err != nil {
			log.Fatalf("tape append: %v", err)
		}
	}

	start := time.Now()
	record()
	for i := 0; i < *steps; i++ {
		sim.Step()
		record()
		if *reportEvery > 0 && sim.Generation()%uint64(*reportEvery) == 0 {
			log.Printf("gen %d alive %d", sim.Generation(), sim.AliveCount())
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("rule=%s grid=%dx%d generations=%d alive=%d elapsed=%s (%.1f gen/s)\n",
		sim.Rule(), size.W, size.H, sim.Generation(), sim.AliveCount(), elapsed.Round(time.Millisecond),
		float64(*steps)/elapsed.Seconds())
	if store != nil {
		n, err := store.Len(ctx)
		if err != nil {
			log.Fatalf("tape: %v", err)
		}
		fmt.Printf("tape frames recorded: %d\n", n)
	}
}
