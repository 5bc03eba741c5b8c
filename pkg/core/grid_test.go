package core

import "testing"

func TestNewBitGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}, {4, -3}, {0, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewBitGrid(%d, %d) did not panic", dims[0], dims[1])
				}
			}()
			NewBitGrid(dims[0], dims[1])
		}()
	}
}

func TestIndexIsRowMajor(t *testing.T) {
	g := NewBitGrid(7, 5)
	if got := g.Index(0, 0); got != 0 {
		t.Fatalf("Index(0,0) = %d, want 0", got)
	}
	if got := g.Index(6, 0); got != 6 {
		t.Fatalf("Index(6,0) = %d, want 6", got)
	}
	if got := g.Index(0, 1); got != 7 {
		t.Fatalf("Index(0,1) = %d, want 7", got)
	}
	if got := g.Index(6, 4); got != 34 {
		t.Fatalf("Index(6,4) = %d, want 34", got)
	}
}

func TestWrapHandlesNegativesAndOverflow(t *testing.T) {
	g := NewBitGrid(8, 6)
	cases := []struct {
		inX, inY     int
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{7, 5, 7, 5},
		{8, 6, 0, 0},
		{-1, -1, 7, 5},
		{15, 13, 7, 1},
		{-9, -7, 7, 5},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.inX, c.inY)
		if x != c.wantX || y != c.wantY {
			t.Fatalf("Wrap(%d, %d) = (%d, %d), want (%d, %d)", c.inX, c.inY, x, y, c.wantX, c.wantY)
		}
	}
}

func TestSetGetClear(t *testing.T) {
	g := NewBitGrid(9, 9)
	positions := []int{0, 1, 31, 32, 33, 63, 64, 80}
	for _, i := range positions {
		g.Set(i, true)
	}
	for _, i := range positions {
		if !g.Get(i) {
			t.Fatalf("cell %d dead after Set(true)", i)
		}
	}
	if g.Get(2) || g.Get(30) || g.Get(79) {
		t.Fatal("untouched cell reported alive")
	}
	if got := g.Count(); got != len(positions) {
		t.Fatalf("Count() = %d, want %d", got, len(positions))
	}

	g.Set(31, false)
	if g.Get(31) {
		t.Fatal("cell 31 alive after Set(false)")
	}
	if !g.Get(32) {
		t.Fatal("clearing cell 31 disturbed cell 32")
	}

	g.Clear()
	if got := g.Count(); got != 0 {
		t.Fatalf("Count() = %d after Clear, want 0", got)
	}
}

func TestWordsLayout(t *testing.T) {
	for _, c := range []struct {
		w, h, words int
	}{
		{1, 1, 1},
		{8, 4, 1},
		{8, 5, 2},
		{33, 1, 2},
		{64, 64, 128},
	} {
		g := NewBitGrid(c.w, c.h)
		if got := len(g.Words()); got != c.words {
			t.Fatalf("%dx%d grid has %d words, want %d", c.w, c.h, got, c.words)
		}
	}

	// Least significant bit first inside each word.
	g := NewBitGrid(8, 4)
	g.Set(0, true)
	if g.Words()[0] != 1 {
		t.Fatalf("word 0 = %#x after Set(0), want 0x1", g.Words()[0])
	}
	g.Set(31, true)
	if g.Words()[0] != 1|1<<31 {
		t.Fatalf("word 0 = %#x after Set(31), want %#x", g.Words()[0], uint32(1|1<<31))
	}
}

func TestCountFullGrid(t *testing.T) {
	g := NewBitGrid(5, 5)
	for i := 0; i < g.Len(); i++ {
		g.Set(i, true)
	}
	if got := g.Count(); got != 25 {
		t.Fatalf("Count() = %d, want 25", got)
	}
	if g.Words()[0] != 1<<25-1 {
		t.Fatalf("word 0 = %#x, want %#x", g.Words()[0], uint32(1<<25-1))
	}
}
