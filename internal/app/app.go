//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"vital-ca/internal/core"
	"vital-ca/internal/render"
	"vital-ca/internal/rule"
	"vital-ca/internal/sims/vitalife"
	"vital-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type painter interface {
	Paint(cx, cy, radius int, state uint16, shape vitalife.BrushShape, density float64)
}

type ruleProvider interface {
	Rule() rule.Rule
}

type aliveCounter interface {
	AliveCount() int
}

// Game adapts a core simulation to the ebiten.Game interface, adding mouse
// painting into the front buffer between steps.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	palette    []color.RGBA
	background color.RGBA
	aliveColor color.RGBA
	decayColor color.RGBA

	scale       int
	paused      bool
	tickOnce    bool
	seed        int64
	brushRadius int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:         sim,
		painter:     gp,
		hud:         ui.NewHUD(sim),
		background:  color.RGBA{A: 255},
		aliveColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		decayColor:  color.RGBA{R: 80, G: 160, B: 255, A: 255},
		scale:       scale,
		seed:        seed,
		brushRadius: 3,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brushRadius > 0 {
		g.brushRadius--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.brushRadius < 64 {
		g.brushRadius++
	}

	if g.hud != nil {
		g.hud.Update()
	}

	// Painting happens into the front buffer, which is only legal between
	// steps; Update runs the paint before the tick for this frame.
	g.handlePaint()

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePaint() {
	p, ok := g.sim.(painter)
	if !ok {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	cx, cy := mx/scale, my/scale
	size := g.sim.Size()
	if cx < 0 || cx >= size.W || cy < 0 || cy >= size.H {
		return
	}
	state := uint16(1)
	if right {
		state = 0
	}
	p.Paint(cx, cy, g.brushRadius, state, vitalife.ShapeCircle, 1)
}

// Draw renders the current simulation state plus the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	states := 2
	ruleLabel := ""
	if provider, ok := g.sim.(ruleProvider); ok {
		r := provider.Rule()
		states = r.States
		ruleLabel = r.String()
	}
	if len(g.palette) != states {
		g.palette = render.DecayPalette(states, g.background, g.aliveColor, g.decayColor)
	}
	g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.scale)

	if g.hud != nil {
		g.hud.Draw(screen, g.status(ruleLabel))
	}
}

func (g *Game) status(ruleLabel string) string {
	alive := -1
	if counter, ok := g.sim.(aliveCounter); ok {
		alive = counter.AliveCount()
	}
	state := "run"
	if g.paused {
		state = "pause"
	}
	if ruleLabel == "" {
		ruleLabel = g.sim.Name()
	}
	if alive < 0 {
		return fmt.Sprintf("%s  gen %d  [%s]  brush %d", ruleLabel, g.sim.Generation(), state, g.brushRadius)
	}
	return fmt.Sprintf("%s  gen %d  alive %d  [%s]  brush %d", ruleLabel, g.sim.Generation(), alive, state, g.brushRadius)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
