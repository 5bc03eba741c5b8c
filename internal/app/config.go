package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string  `json:"sim"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	WindowW int     `json:"window_width"`
	WindowH int     `json:"window_height"`
	TPS     int     `json:"tps"`
	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
	Pattern string  `json:"pattern"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Width:   64,
		Height:  64,
		WindowW: 960,
		WindowH: 720,
		TPS:     60,
		Seed:    42,
		Density: 0.5,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.WindowW, "winw", c.WindowW, "window width bound in pixels")
	fs.IntVar(&c.WindowH, "winh", c.WindowH, "window height bound in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Density, "density", c.Density, "live fraction for random seeding")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a named pattern instead of a random soup")
}

// LoadFile overlays values from a JSON config file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] error reading config file %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] error parsing config file %s", path)
	}
	return nil
}

// Validate rejects configurations the simulation or renderer cannot use.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if c.WindowW <= 0 || c.WindowH <= 0 {
		return errors.Errorf("[Validate] window bounds %dx%d must be positive", c.WindowW, c.WindowH)
	}
	if c.TPS < 1 || c.TPS > maxTPS {
		return errors.Errorf("[Validate] tps %d must lie in [1, %d]", c.TPS, maxTPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("[Validate] density %v must lie in [0, 1]", c.Density)
	}
	return nil
}

// SimOptions converts the grid settings into factory key/value pairs.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
}

// Load builds the configuration from command-line arguments. When -config
// names a JSON file its values are applied first, so explicit flags win.
func Load(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	path := ""
	fs := newFlagSet(name, cfg, &path)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if path != "" {
		cfg = NewConfig()
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		fs = newFlagSet(name, cfg, &path)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFlagSet(name string, cfg *Config, path *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(path, "config", *path, "path to a JSON config file")
	cfg.Bind(fs)
	return fs
}

// maxTPS bounds the simulation rate a config may request.
const maxTPS = 1000
