package render

import (
	"bytes"
	"image/png"
	"testing"

	"lifelab/pkg/core"
)

func TestSnapshotDimensions(t *testing.T) {
	g := core.NewBitGrid(4, 3)
	img := Snapshot(g, 5)
	if w, h := img.Rect.Dx(), img.Rect.Dy(); w != 25 || h != 19 {
		t.Fatalf("snapshot is %dx%d, want 25x19", w, h)
	}
}

func TestSnapshotPixels(t *testing.T) {
	g := core.NewBitGrid(2, 2)
	g.Set(g.Index(1, 0), true)
	img := Snapshot(g, 3)

	if got := img.RGBAAt(0, 0); got != GridColor {
		t.Fatalf("corner pixel = %v, want gridline %v", got, GridColor)
	}
	if got := img.RGBAAt(4, 1); got != GridColor {
		t.Fatalf("inner line pixel = %v, want gridline %v", got, GridColor)
	}
	if got := img.RGBAAt(8, 8); got != GridColor {
		t.Fatalf("trailing line pixel = %v, want gridline %v", got, GridColor)
	}
	if got := img.RGBAAt(1, 1); got != DeadColor {
		t.Fatalf("dead cell pixel = %v, want %v", got, DeadColor)
	}
	if got := img.RGBAAt(5, 1); got != AliveColor {
		t.Fatalf("live cell anchor pixel = %v, want %v", got, AliveColor)
	}
	if got := img.RGBAAt(7, 3); got != AliveColor {
		t.Fatalf("live cell interior pixel = %v, want %v", got, AliveColor)
	}
	if got := img.RGBAAt(5, 5); got != DeadColor {
		t.Fatalf("pixel below live cell = %v, want %v", got, DeadColor)
	}
}

func TestWritePNG(t *testing.T) {
	g := core.NewBitGrid(8, 8)
	g.Set(g.Index(3, 3), true)

	var buf bytes.Buffer
	if err := WritePNG(&buf, g, 2); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != Span(8, 2) || b.Dy() != Span(8, 2) {
		t.Fatalf("decoded PNG is %dx%d, want %dx%d", b.Dx(), b.Dy(), Span(8, 2), Span(8, 2))
	}
}
