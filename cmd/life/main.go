//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"lifelab/internal/app"
	"lifelab/internal/render"
	"lifelab/pkg/core"
	"lifelab/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load("life", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim := factory(cfg.SimOptions())

	if cfg.Pattern != "" {
		if err := seedPattern(sim, cfg.Pattern); err != nil {
			log.Fatal(err)
		}
	}

	game := app.New(sim, cfg)
	size := sim.Size()
	cell := render.CellSize(cfg.WindowW, cfg.WindowH, size.W, size.H)

	ebiten.SetWindowTitle("lifelab - " + sim.Name())
	ebiten.SetWindowSize(render.Span(size.W, cell), render.Span(size.H, cell))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

type patternSeeder interface {
	SetCells([]core.Cell)
	Place([]core.Cell, int, int)
}

// seedPattern clears the board and stamps the named pattern at its center.
func seedPattern(sim core.Sim, name string) error {
	cells, ok := life.Patterns[name]
	if !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}
	seeder, ok := sim.(patternSeeder)
	if !ok {
		return fmt.Errorf("sim %q does not support patterns", sim.Name())
	}
	size := sim.Size()
	seeder.SetCells(nil)
	seeder.Place(cells, size.W/2, size.H/2)
	return nil
}
