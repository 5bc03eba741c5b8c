package life

import (
	"fmt"

	"lifelab/pkg/core"
)

// Life implements Conway's Game of Life on a toroidal bit-packed grid.
// Generations are double buffered: Step writes the next generation into a
// spare grid and swaps it in, so the current grid is never read and written
// in the same pass.
type Life struct {
	w, h       int
	cur        *core.BitGrid
	nxt        *core.BitGrid
	density    float64
	generation int
}

// New returns a Life simulation with the provided dimensions and default
// seeding. It panics when either dimension is not positive.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a Life simulation from cfg and randomizes it with
// cfg.Seed. It panics when the configured dimensions are not positive.
func NewWithConfig(cfg Config) *Life {
	l := &Life{
		w:       cfg.Width,
		h:       cfg.Height,
		cur:     core.NewBitGrid(cfg.Width, cfg.Height),
		nxt:     core.NewBitGrid(cfg.Width, cfg.Height),
		density: cfg.Density,
	}
	l.Reset(cfg.Seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Bits exposes the current generation.
func (l *Life) Bits() *core.BitGrid { return l.cur }

// Cells exposes the current generation as packed 32-bit words, least
// significant bit first in row-major order.
func (l *Life) Cells() []uint32 { return l.cur.Words() }

// Generation returns the number of steps since the last Reset or SetCells.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	core.FillBits(core.NewRNG(seed), l.cur, l.density)
	l.generation = 0
}

// SetCells clears the board and marks exactly the listed cells alive.
// It panics when a cell lies outside the grid.
func (l *Life) SetCells(cells []core.Cell) {
	l.cur.Clear()
	for _, c := range cells {
		if c.X < 0 || c.X >= l.w || c.Y < 0 || c.Y >= l.h {
			panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", c.X, c.Y, l.w, l.h))
		}
		l.cur.Set(l.cur.Index(c.X, c.Y), true)
	}
	l.generation = 0
}

// Place stamps a pattern onto the current board at the given offset,
// wrapping coordinates onto the torus. Existing live cells are kept.
func (l *Life) Place(pattern []core.Cell, ox, oy int) {
	for _, c := range pattern {
		x, y := l.cur.Wrap(c.X+ox, c.Y+oy)
		l.cur.Set(l.cur.Index(x, y), true)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			l.nxt.Set(idx, NextState(l.cur.Get(idx), l.liveNeighbors(x, y)))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// NextState applies the B3/S23 rule: a live cell survives with two or three
// live neighbors, a dead cell comes alive with exactly three.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// liveNeighbors counts live cells in the Moore neighborhood of (x, y),
// wrapping at the edges.
func (l *Life) liveNeighbors(x, y int) int {
	w, h := l.w, l.h
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if l.cur.Get(ny*w + nx) {
				neighbors++
			}
		}
	}
	return neighbors
}

// NeighborCounts fills dst with the live neighbor count of every cell and
// returns it, allocating when dst is too small.
func (l *Life) NeighborCounts(dst []uint8) []uint8 {
	total := l.w * l.h
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			dst[y*l.w+x] = uint8(l.liveNeighbors(x, y))
		}
	}
	return dst
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
