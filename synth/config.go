// Package synth implements noise synthesis (C5): a smooth low-frequency
// base, a spatially-varying Hurst field, an anisotropic/warped detail fBm
// stack, non-stationary amplitude modulation, elevation-range scaling, and a
// hypsometric-integral remap. Grounded directly on
// original_source/crates/terra-core/src/noise/*.rs, with the exact
// frequencies and gains SPEC_FULL.md §4.2 specifies taking precedence where
// the distilled spec's numbers differ from the reference crate's internal
// derivation (e.g. the smooth base's fixed frequency and gain).
package synth

import "github.com/spectrum-art/terra-incognita/grid"

// Config carries the per-tile/per-planet noise synthesis parameters (C5's
// NoiseParams), following the teacher's Config{}/NewXxxConfig() convention.
type Config struct {
	Seed      uint64
	Class     grid.TerrainClass
	HBase     float64 // 0.3..0.95
	HVariance float64

	GrainAngle     float64 // radians
	GrainIntensity float64 // 0..1

	MountainHeightScale float64
	UpliftScale         float64
}

// NewConfig returns a Config with mid-range defaults.
func NewConfig(seed uint64, class grid.TerrainClass) Config {
	return Config{
		Seed:                seed,
		Class:               class,
		HBase:               0.7,
		HVariance:           0.1,
		GrainAngle:          0,
		GrainIntensity:      0,
		MountainHeightScale: 1.0,
		UpliftScale:         1.0,
	}
}
