package main

import (
	"crypto/md5"
	"encoding/binary"

	"lifelab/pkg/sims/life"
)

// historyDepth bounds cycle detection. Still lifes and oscillators with a
// period up to this depth count as settled; longer-period travelers keep
// running until the step cap.
const historyDepth = 5

// soupResult records how a random soup played out.
type soupResult struct {
	seed       int64
	lifespan   int
	population int
	peak       int
	settled    bool
}

// fingerprint hashes the packed board words.
func fingerprint(words []uint32) [md5.Size]byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return md5.Sum(buf)
}

// runSoup seeds a fresh soup and measures it.
func runSoup(cfg life.Config, seed int64, maxSteps int) soupResult {
	cfg.Seed = seed
	return measure(life.NewWithConfig(cfg), seed, maxSteps)
}

// measure steps the board until it revisits one of its recent states or the
// step cap is hit.
func measure(l *life.Life, seed int64, maxSteps int) soupResult {
	res := soupResult{seed: seed, population: l.Population(), peak: l.Population()}

	history := make([][md5.Size]byte, 0, historyDepth)
	history = append(history, fingerprint(l.Cells()))

	for step := 1; step <= maxSteps; step++ {
		l.Step()
		res.lifespan = step
		res.population = l.Population()
		if res.population > res.peak {
			res.peak = res.population
		}

		fp := fingerprint(l.Cells())
		for _, h := range history {
			if h == fp {
				res.settled = true
				return res
			}
		}
		history = append(history, fp)
		if len(history) > historyDepth {
			history = history[1:]
		}
	}
	return res
}
