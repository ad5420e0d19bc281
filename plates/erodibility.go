package plates

import (
	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/rng"
)

// erodibilityRange returns the regime-dependent [low, high] erodibility
// range, per original_source/.../plates/erodibility_field.rs: hard cratonic
// basement at one end, soft passive-margin sediment piles at the other.
func erodibilityRange(regime grid.TectonicRegime) (lo, hi float64) {
	switch regime {
	case grid.CratonicShield:
		return 0.05, 0.30
	case grid.ActiveCompressional:
		return 0.25, 0.55
	case grid.ActiveExtensional:
		return 0.30, 0.60
	case grid.VolcanicHotspot:
		return 0.30, 0.60
	default: // PassiveMargin
		return 0.55, 0.90
	}
}

// generateErodibilityField builds a smooth [0,1] erodibility field biased by
// tectonic regime, per SPEC_FULL.md §4.1: low-frequency noise picks a
// position within each regime's characteristic range, then a few box-blur
// passes erase the hard jumps at regime boundaries so the contract
// mean(ActiveCompressional) < mean(PassiveMargin) holds without ever
// producing a discontinuity.
func generateErodibilityField(cfg Config, width, height int, regime []grid.TectonicRegime) []float64 {
	n := width * height
	field := make([]float64, n)
	if n == 0 {
		return field
	}

	src := rng.NewSource(rng.SubSeed(cfg.Seed, rng.SeedErodibility))
	freqX := 4.0 / float64(width)
	freqY := 4.0 / float64(height)

	grid.ParallelRows(height, func(row int) {
		for c := 0; c < width; c++ {
			idx := row*width + c
			noiseRaw := src.Eval2(float64(c)*freqX, float64(row)*freqY)
			t := noiseRaw*0.5 + 0.5
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			lo, hi := erodibilityRange(regime[idx])
			field[idx] = lo + t*(hi-lo)
		}
	})

	for i := 0; i < 3; i++ {
		field = boxBlur3x3(field, width, height)
	}
	return field
}

// boxBlur3x3 averages each cell with its eight neighbours, clamping at the
// north/south border and wrapping at the east/west longitude seam.
func boxBlur3x3(data []float64, width, height int) []float64 {
	out := make([]float64, width*height)
	hf, _ := grid.NewHeightField(width, height, -90, 90, -180, 180)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			var sum float64
			var count int
			for dr := -1; dr <= 1; dr++ {
				nr := r + dr
				if nr < 0 || nr >= height {
					continue
				}
				for dc := -1; dc <= 1; dc++ {
					nc := hf.WrapCol(c + dc)
					sum += data[nr*width+nc]
					count++
				}
			}
			out[r*width+c] = sum / float64(count)
		}
	}
	return out
}
