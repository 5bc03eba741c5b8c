package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell addresses a single grid cell by column (X) and row (Y).
type Cell struct {
	X int
	Y int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Bits returns the current generation; callers must treat it as read-only.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Bits() *BitGrid
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
