package render

import (
	"image/color"
	"math"
)

// DecayPalette builds a palette for a rule with the given state count:
// index 0 is the background, index 1 the alive color, and indices 2..states-1
// fade from the fresh-decay color down to the background as cells age.
func DecayPalette(states int, background, alive, decay color.RGBA) []color.RGBA {
	if states < 2 {
		states = 2
	}
	palette := make([]color.RGBA, states)
	palette[0] = background
	palette[1] = alive
	for s := 2; s < states; s++ {
		// Vitality runs from ~1 just after death to ~0 at the chain's end.
		v := float64(states-s) / float64(states-1)
		palette[s] = lerpRGBA(background, decay, v)
	}
	return palette
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
