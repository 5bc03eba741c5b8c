package life

import "lifelab/pkg/core"

// Well-known starting patterns, anchored at the top-left of their bounding
// box. Stamp them with Place.
var (
	// Blinker is a vertical period-2 oscillator.
	Blinker = []core.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}

	// Block is a 2x2 still life.
	Block = []core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	// Glider travels one cell down and right every four generations.
	Glider = []core.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
)

// Patterns maps the names accepted on the command line to their cells.
var Patterns = map[string][]core.Cell{
	"blinker": Blinker,
	"block":   Block,
	"glider":  Glider,
}
