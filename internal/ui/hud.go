//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifelab/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Generation() int
	Population() int
}

// HUD paints a small stats panel in the top-left corner of the screen.
type HUD struct {
	sim     core.Sim
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation. It starts visible.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update toggles panel visibility when H is pressed.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel. seed and tps describe the running configuration,
// paused the current loop state.
func (h *HUD) Draw(screen *ebiten.Image, seed int64, tps int, paused bool) {
	if h == nil || !h.visible {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(panelWidth, panelHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})

	size := h.sim.Size()
	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("%s %dx%d", h.sim.Name(), size.W, size.H),
		fmt.Sprintf("seed %d  tps %d", seed, tps),
	}
	if provider, ok := h.sim.(statsProvider); ok {
		lines = append(lines, fmt.Sprintf("gen %d  pop %d", provider.Generation(), provider.Population()))
	}
	if paused {
		lines = append(lines, "paused")
	}

	y := panelPadding + lineBaseline
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelMargin, panelMargin)
	screen.DrawImage(h.panel, op)
}

const (
	panelWidth   = 180
	panelHeight  = 80
	panelMargin  = 4
	panelPadding = 8
	lineHeight   = 16
	lineBaseline = 11
)
