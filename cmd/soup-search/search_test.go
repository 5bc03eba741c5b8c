package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"lifelab/pkg/sims/life"
)

func TestFingerprintTracksBoard(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.Seed = 1
	a := life.NewWithConfig(cfg)
	b := life.NewWithConfig(cfg)
	if fingerprint(a.Cells()) != fingerprint(b.Cells()) {
		t.Fatal("identical boards hashed differently")
	}
	b.Reset(2)
	if fingerprint(a.Cells()) == fingerprint(b.Cells()) {
		t.Fatal("different boards hashed identically")
	}
}

func TestMeasureFlagsStillLife(t *testing.T) {
	l := life.New(8, 8)
	l.SetCells(nil)
	l.Place(life.Block, 3, 3)

	res := measure(l, 0, 50)
	if !res.settled {
		t.Fatal("block not reported settled")
	}
	if res.lifespan != 1 {
		t.Fatalf("block lifespan %d, want 1", res.lifespan)
	}
	if res.population != 4 {
		t.Fatalf("block population %d, want 4", res.population)
	}
}

func TestMeasureFlagsOscillator(t *testing.T) {
	l := life.New(8, 8)
	l.SetCells(nil)
	l.Place(life.Blinker, 3, 2)

	res := measure(l, 0, 50)
	if !res.settled {
		t.Fatal("blinker not reported settled")
	}
	if res.lifespan != 2 {
		t.Fatalf("blinker lifespan %d, want 2", res.lifespan)
	}
}

func TestMeasureCapsRunawayBoards(t *testing.T) {
	l := life.New(16, 16)
	l.SetCells(nil)
	l.Place(life.Glider, 2, 2)

	res := measure(l, 0, 20)
	if res.settled {
		t.Fatal("glider reported settled before revisiting a recent state")
	}
	if res.lifespan != 20 {
		t.Fatalf("lifespan %d, want cap 20", res.lifespan)
	}
	if res.population != 5 {
		t.Fatalf("population %d, want 5", res.population)
	}
}

func TestExportBoardWritesPNG(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width = 12
	cfg.Height = 12

	path := filepath.Join(t.TempDir(), "best.png")
	if err := exportBoard(cfg, soupResult{seed: 5, lifespan: 3}, path, 3); err != nil {
		t.Fatalf("exportBoard: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 49 || b.Dy() != 49 {
		t.Fatalf("export is %dx%d, want 49x49", b.Dx(), b.Dy())
	}

	missing := filepath.Join(t.TempDir(), "missing", "best.png")
	if err := exportBoard(cfg, soupResult{seed: 5, lifespan: 3}, missing, 3); err == nil {
		t.Fatal("exportBoard accepted a path in a missing directory")
	}
}

func TestRunSoupDeterministic(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24

	a := runSoup(cfg, 11, 200)
	b := runSoup(cfg, 11, 200)
	if a != b {
		t.Fatalf("same soup measured differently: %+v vs %+v", a, b)
	}
}
