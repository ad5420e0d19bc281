package climate

import (
	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/rng"
)

// generateMAPNoise returns a multiplicative correction field centred on 1.0:
// a 3-octave fBm at ~2 cycles across the grid (so the spatial correlation
// length stays well above a single cell), amplitude clamp(climateDiversity*
// 0.4, 0, 0.4). Grounded on original_source/.../climate/map_noise.rs's
// generate_map_noise; rng.Source/FBm2Aniso stands in for noise::Perlin.
func generateMAPNoise(cfg Config, width, height int) []float64 {
	n := width * height
	result := make([]float64, n)
	if n == 0 {
		return result
	}

	src := rng.NewSource(rng.SubSeed(cfg.Seed, rng.SeedClimateMapNoise))
	freqX := 2.0 / float64(width)
	freqY := 2.0 / float64(height)
	gain := rng.ConstantGain(1.0) // 2^-1 = 0.5 per-octave gain, lacunarity 2

	amplitude := cfg.ClimateDiversity * 0.4
	if amplitude < 0 {
		amplitude = 0
	} else if amplitude > 0.4 {
		amplitude = 0.4
	}

	grid.ParallelRows(height, func(r int) {
		for c := 0; c < width; c++ {
			normalized := src.FBm2Aniso(float64(c), float64(r), 3, freqX, freqY, 2.0, gain)
			result[r*width+c] = 1.0 + amplitude*normalized
		}
	})
	return result
}
