//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifelab/pkg/core"
)

// BoardPainter draws a bit grid with gridlines at a fixed cell size.
type BoardPainter struct {
	gridW, gridH int
	cellSize     int
}

// NewBoardPainter constructs a painter for a gridW x gridH board.
func NewBoardPainter(gridW, gridH, cellSize int) *BoardPainter {
	if cellSize < 1 {
		cellSize = 1
	}
	return &BoardPainter{gridW: gridW, gridH: gridH, cellSize: cellSize}
}

// CellSize returns the cell edge length in pixels.
func (p *BoardPainter) CellSize() int { return p.cellSize }

// PixelSize returns the board extent in pixels, gridlines included.
func (p *BoardPainter) PixelSize() (int, int) {
	return Span(p.gridW, p.cellSize), Span(p.gridH, p.cellSize)
}

// Draw paints the board anchored at the top-left corner of dst.
func (p *BoardPainter) Draw(dst *ebiten.Image, g *core.BitGrid) {
	pw, ph := p.PixelSize()
	vector.DrawFilledRect(dst, 0, 0, float32(pw), float32(ph), DeadColor, false)

	for i := 0; i <= p.gridW; i++ {
		x := float32(i*(p.cellSize+1)) + 0.5
		vector.StrokeLine(dst, x, 0, x, float32(ph), 1, GridColor, false)
	}
	for j := 0; j <= p.gridH; j++ {
		y := float32(j*(p.cellSize+1)) + 0.5
		vector.StrokeLine(dst, 0, y, float32(pw), y, 1, GridColor, false)
	}

	cs := float32(p.cellSize)
	for y := 0; y < p.gridH; y++ {
		for x := 0; x < p.gridW; x++ {
			if !g.Get(g.Index(x, y)) {
				continue
			}
			px := float32(x*(p.cellSize+1) + 1)
			py := float32(y*(p.cellSize+1) + 1)
			vector.DrawFilledRect(dst, px, py, cs, cs, AliveColor, false)
		}
	}
}
