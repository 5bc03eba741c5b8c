package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"lifelab/pkg/core"
)

// Snapshot renders the grid into an RGBA image at the given cell size, with
// one-pixel gridlines between and around the cells.
func Snapshot(g *core.BitGrid, cellSize int) *image.RGBA {
	if cellSize < 1 {
		cellSize = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, Span(g.W, cellSize), Span(g.H, cellSize)))

	fillRect(img, 0, 0, img.Rect.Dx(), img.Rect.Dy(), GridColor)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			col := DeadColor
			if g.Get(g.Index(x, y)) {
				col = AliveColor
			}
			fillRect(img, x*(cellSize+1)+1, y*(cellSize+1)+1, cellSize, cellSize, col)
		}
	}
	return img
}

// WritePNG encodes the grid as a PNG at the given cell size.
func WritePNG(w io.Writer, g *core.BitGrid, cellSize int) error {
	return png.Encode(w, Snapshot(g, cellSize))
}

func fillRect(img *image.RGBA, x0, y0, w, h int, col color.RGBA) {
	for y := y0; y < y0+h; y++ {
		base := img.PixOffset(x0, y)
		for x := 0; x < w; x++ {
			img.Pix[base+0] = col.R
			img.Pix[base+1] = col.G
			img.Pix[base+2] = col.B
			img.Pix[base+3] = col.A
			base += 4
		}
	}
}
