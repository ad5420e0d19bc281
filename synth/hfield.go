package synth

import (
	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/rng"
)

// generateHField builds the per-cell local Hurst exponent: a smooth,
// low-frequency (2 cycles across the grid) noise field remapped from
// (-1,1) to [h_base-h_variance, h_base+h_variance] and clipped to
// [0.3, 0.95]. Grounded on original_source/.../noise/multifractal.rs's
// generate_h_field.
func generateHField(cfg Config, width, height int) []float64 {
	n := width * height
	field := make([]float64, n)
	if n == 0 {
		return field
	}

	src := rng.NewSource(rng.SubSeed(cfg.Seed, rng.SeedHField))
	m := width
	if height > m {
		m = height
	}
	freq := 2.0 / float64(m)

	lo := cfg.HBase - cfg.HVariance
	hi := cfg.HBase + cfg.HVariance
	clipLo := lo
	if clipLo < 0.3 {
		clipLo = 0.3
	}
	clipHi := hi
	if clipHi > 0.95 {
		clipHi = 0.95
	}

	grid.ParallelRows(height, func(r int) {
		for c := 0; c < width; c++ {
			raw := src.Eval2(float64(c)*freq, float64(r)*freq)
			h := lo + (raw+1.0)*0.5*(hi-lo)
			if h < clipLo {
				h = clipLo
			} else if h > clipHi {
				h = clipHi
			}
			field[r*width+c] = h
		}
	})
	return field
}
