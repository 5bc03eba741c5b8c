//go:build ebiten

package app

import (
	"time"

	"lifelab/internal/render"
	"lifelab/internal/ui"
	"lifelab/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.BoardPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep

	tps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The cell size is
// derived from the configured window bounds.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	cell := render.CellSize(cfg.WindowW, cfg.WindowH, size.W, size.H)
	return &Game{
		sim:     sim,
		painter: render.NewBoardPainter(size.W, size.H, cell),
		hud:     ui.NewHUD(sim),
		overlay: ui.NewOverlay(sim, cell),
		timer:   core.NewFixedStep(cfg.TPS),
		tps:     cfg.TPS,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.timer.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.timer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.paused {
		g.paused = false
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update()
	g.overlay.Update()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	} else if !g.paused {
		steps := 0
		for g.timer.ShouldStep() {
			g.sim.Step()
			steps++
			if steps == maxCatchUpSteps {
				g.timer.Reset()
				break
			}
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.sim.Bits())
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.seed, g.tps, g.paused)
}

// Layout returns the logical screen size, the board extent in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.PixelSize()
}

// maxCatchUpSteps caps simulation steps per Update; backlog past the cap is
// dropped rather than replayed.
const maxCatchUpSteps = 32
