package render

import "image/color"

// Board palette: light gray gridlines, black live cells, white dead cells.
var (
	GridColor  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	AliveColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	DeadColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// CellSize returns the largest square cell edge, in pixels, that lets the
// whole board fit the target surface once the one-pixel gridlines between
// and around the cells are accounted for. The result is never below one,
// so tiny surfaces overflow rather than degenerate.
func CellSize(surfaceW, surfaceH, gridW, gridH int) int {
	if gridW <= 0 || gridH <= 0 {
		return 1
	}
	cs := (surfaceW - gridW - 1) / gridW
	if ch := (surfaceH - gridH - 1) / gridH; ch < cs {
		cs = ch
	}
	if cs < 1 {
		cs = 1
	}
	return cs
}

// Span returns the pixel extent of n cells drawn at the given cell size,
// including the gridline on each side of every cell.
func Span(n, cellSize int) int {
	return n*(cellSize+1) + 1
}
