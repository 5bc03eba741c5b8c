package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifelab/internal/render"
	"lifelab/pkg/sims/life"
)

func main() {
	soups := flag.Int("soups", 512, "random soups to run")
	steps := flag.Int("steps", 2000, "step cap per soup")
	width := flag.Int("w", 64, "grid width in cells")
	height := flag.Int("h", 64, "grid height in cells")
	density := flag.Float64("density", 0.5, "live fraction for the initial soup")
	seed := flag.Int64("seed", 1, "seed of the first soup; soup i runs with seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "result lines to print")
	out := flag.String("out", "", "write the best soup's final board to this PNG")
	cell := flag.Int("cell", 4, "cell size in pixels for the PNG export")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("grid dimensions %dx%d must be positive", *width, *height)
	}
	if *density < 0 || *density > 1 {
		log.Fatalf("density %v must lie in [0, 1]", *density)
	}

	cfg := life.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Density = *density

	fmt.Printf("Searching %d soups on a %dx%d torus (%d workers, cap %d steps)\n",
		*soups, cfg.Width, cfg.Height, *workers, *steps)

	jobs := make(chan int64)
	results := make(chan soupResult)

	var g errgroup.Group
	for i := 0; i < *workers; i++ {
		g.Go(func() error {
			for s := range jobs {
				results <- runSoup(cfg, s, *steps)
			}
			return nil
		})
	}

	go func() {
		for i := 0; i < *soups; i++ {
			jobs <- *seed + int64(i)
		}
		close(jobs)
	}()

	go func() {
		g.Wait()
		close(results)
	}()

	start := time.Now()
	var all []soupResult
	settledCount := 0
	for res := range results {
		all = append(all, res)
		if res.settled {
			settledCount++
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].lifespan != all[j].lifespan {
			return all[i].lifespan > all[j].lifespan
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	fmt.Printf("\n%d of %d soups settled within %d steps. Top %d by lifespan (elapsed %s):\n",
		settledCount, len(all), *steps, *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%-6d lifespan=%-6d pop=%-5d peak=%-5d settled=%v\n",
			i+1, res.seed, res.lifespan, res.population, res.peak, res.settled)
	}

	if *out != "" && len(all) > 0 {
		best := all[0]
		if err := exportBoard(cfg, best, *out, *cell); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nWrote %s (seed %d after %d steps)\n", *out, best.seed, best.lifespan)
	}
}

// exportBoard replays a soup to its measured end and writes the board as a PNG.
func exportBoard(cfg life.Config, res soupResult, path string, cellSize int) error {
	cfg.Seed = res.seed
	l := life.NewWithConfig(cfg)
	for i := 0; i < res.lifespan; i++ {
		l.Step()
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[exportBoard] error creating %s", path)
	}
	if err := render.WritePNG(f, l.Bits(), cellSize); err != nil {
		f.Close()
		return errors.Wrapf(err, "[exportBoard] error encoding %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "[exportBoard] error closing %s", path)
	}
	return nil
}
