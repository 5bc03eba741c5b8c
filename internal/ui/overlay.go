//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"lifelab/internal/render"
	"lifelab/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type neighborSource interface {
	NeighborCounts(dst []uint8) []uint8
}

// Overlay draws optional debugging visuals on top of the base board.
type Overlay struct {
	sim      core.Sim
	cellSize int
	showHeat bool

	heatImg *ebiten.Image
	heatBuf []byte
	counts  []uint8
}

// NewOverlay constructs an overlay matched to the board's cell size.
func NewOverlay(sim core.Sim, cellSize int) *Overlay {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Overlay{sim: sim, cellSize: cellSize}
}

// Update handles overlay toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.showHeat {
		return
	}
	source, ok := o.sim.(neighborSource)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.heatImg == nil || o.heatImg.Bounds().Dx() != size.W || o.heatImg.Bounds().Dy() != size.H {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*total)
	}

	o.counts = source.NeighborCounts(o.counts)
	render.FillCountRGBA(o.heatBuf, o.counts, heatPalette)
	o.heatImg.ReplacePixels(o.heatBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.cellSize+1), float64(o.cellSize+1))
	op.GeoM.Translate(1, 1)
	screen.DrawImage(o.heatImg, op)
}

// heatPalette tints cells by live neighbor count, cold blue through hot
// orange. Count zero stays transparent.
var heatPalette = buildHeatPalette()

func buildHeatPalette() []color.RGBA {
	cold := color.RGBA{R: 60, G: 120, B: 220, A: 90}
	hot := color.RGBA{R: 250, G: 120, B: 40, A: 170}
	palette := make([]color.RGBA, 9)
	for i := 1; i < len(palette); i++ {
		palette[i] = lerpRGBA(cold, hot, float64(i-1)/7)
	}
	return palette
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
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
