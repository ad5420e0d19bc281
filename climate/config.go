// Package climate builds the latitudinal-precipitation, orographic,
// seasonality, and glaciation layers that noise synthesis and hydraulic
// shaping consume (C4), grounded on
// original_source/crates/terra-core/src/climate/*.rs.
package climate

import "github.com/spectrum-art/terra-incognita/grid"

// Config mirrors the teacher's Config{}/NewXxxConfig() parameter-plumbing
// pattern (see plates.Config).
type Config struct {
	Seed             uint64
	WaterAbundance   float64 // 0..1, Earth default 0.55
	ClimateDiversity float64 // 0..1, Earth default 0.70
	Glaciation       float64 // 0..1
}

// NewConfig returns a Config with Earth-calibrated defaults.
func NewConfig(seed uint64) Config {
	return Config{
		Seed:             seed,
		WaterAbundance:   0.55,
		ClimateDiversity: 0.70,
		Glaciation:       0.10,
	}
}

// Layer is the full output of the climate pipeline (C4's ClimateLayer).
type Layer struct {
	Width, Height int

	MAPField         []float64          // mm/yr, row-major
	SeasonalityField []float64          // 0..1, row-major
	GlaciationMask   []grid.GlacialClass // row-major
}
