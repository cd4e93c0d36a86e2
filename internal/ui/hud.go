//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"vital-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a status readout over the simulation view and lets the keyboard
// adjust the parameters a sim exposes: Tab cycles the selection, - and =
// step the selected value.
type HUD struct {
	sim      core.Sim
	visible  bool
	selected int
	controls []core.ParameterControl
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	return h
}

// Update processes HUD keyboard input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		h.adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		h.adjust(1)
	}
}

func (h *HUD) adjust(direction float64) {
	ctrl := h.controls[h.selected]
	switch ctrl.Type {
	case core.ParamTypeInt:
		getter, ok := h.sim.(core.IntParameterGetter)
		if !ok {
			return
		}
		setter, ok := h.sim.(core.IntParameterSetter)
		if !ok {
			return
		}
		current, ok := getter.IntParameter(ctrl.Key)
		if !ok {
			return
		}
		step := int(ctrl.Step)
		if step == 0 {
			step = 1
		}
		setter.SetIntParameter(ctrl.Key, current+step*int(direction))
	case core.ParamTypeFloat:
		getter, ok := h.sim.(core.FloatParameterGetter)
		if !ok {
			return
		}
		setter, ok := h.sim.(core.FloatParameterSetter)
		if !ok {
			return
		}
		current, ok := getter.FloatParameter(ctrl.Key)
		if !ok {
			return
		}
		setter.SetFloatParameter(ctrl.Key, current+ctrl.Step*direction)
	}
}

// Draw renders the status line plus the parameter list.
func (h *HUD) Draw(screen *ebiten.Image, status string) {
	if !h.visible {
		return
	}
	face := basicfont.Face7x13
	y := 12
	text.Draw(screen, status, face, 4, y, color.White)
	for i, ctrl := range h.controls {
		y += 14
		marker := " "
		if i == h.selected {
			marker = ">"
		}
		text.Draw(screen, fmt.Sprintf("%s %s: %s", marker, ctrl.Label, h.controlValue(ctrl)), face, 4, y, color.White)
	}
}

func (h *HUD) controlValue(ctrl core.ParameterControl) string {
	switch ctrl.Type {
	case core.ParamTypeInt:
		if getter, ok := h.sim.(core.IntParameterGetter); ok {
			if v, ok := getter.IntParameter(ctrl.Key); ok {
				return fmt.Sprintf("%d", v)
			}
		}
	case core.ParamTypeFloat:
		if getter, ok := h.sim.(core.FloatParameterGetter); ok {
			if v, ok := getter.FloatParameter(ctrl.Key); ok {
				return fmt.Sprintf("%.2f", v)
			}
		}
	}
	return "--"
}
