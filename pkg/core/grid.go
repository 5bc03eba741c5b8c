package core

import (
	"fmt"
	"math/bits"
)

const wordBits = 32

// BitGrid stores a 2D grid of boolean cells packed into 32-bit words.
// Cells are laid out in row-major order, least significant bit first, so
// linear position i lives at bit i%32 of word i/32.
type BitGrid struct {
	W, H  int
	words []uint32
}

// NewBitGrid allocates a cleared grid with the given dimensions. It panics
// when either dimension is not positive.
func NewBitGrid(w, h int) *BitGrid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", w, h))
	}
	return &BitGrid{
		W:     w,
		H:     h,
		words: make([]uint32, (w*h+wordBits-1)/wordBits),
	}
}

// Index returns the linear bit position for coordinates (x, y).
func (g *BitGrid) Index(x, y int) int {
	return y*g.W + x
}

// Wrap maps arbitrary coordinates onto the torus, handling negatives.
func (g *BitGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get reports whether the cell at linear position i is alive.
// Positions outside [0, W*H) are the caller's bug.
func (g *BitGrid) Get(i int) bool {
	return g.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Set writes the cell at linear position i.
func (g *BitGrid) Set(i int, alive bool) {
	if alive {
		g.words[i/wordBits] |= 1 << (i % wordBits)
		return
	}
	g.words[i/wordBits] &^= 1 << (i % wordBits)
}

// Clear marks every cell dead.
func (g *BitGrid) Clear() {
	for i := range g.words {
		g.words[i] = 0
	}
}

// Count returns the number of live cells. Bits past W*H-1 are never set,
// so the popcount over the backing words is exact.
func (g *BitGrid) Count() int {
	total := 0
	for _, w := range g.words {
		total += bits.OnesCount32(w)
	}
	return total
}

// Len returns the cell count W*H.
func (g *BitGrid) Len() int {
	return g.W * g.H
}

// Words exposes the packed backing store without copying. The slice holds
// ceil(W*H/32) words; callers must not modify it.
func (g *BitGrid) Words() []uint32 {
	return g.words
}
