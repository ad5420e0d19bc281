package synth

import "github.com/spectrum-art/terra-incognita/grid"

// targetHI returns the empirically-calibrated target hypsometric integral
// per terrain class, transcribed from
// original_source/.../noise/mod.rs's target_hi.
func targetHI(class grid.TerrainClass) float64 {
	switch class {
	case grid.Alpine:
		return 0.335
	case grid.FluvialHumid:
		return 0.361
	case grid.FluvialArid:
		return 0.348
	case grid.Cratonic:
		return 0.278
	case grid.Coastal:
		return 0.467
	default:
		return 0.35
	}
}

// elevationRangeM returns the elevation range in metres per terrain class,
// transcribed from original_source/.../noise/mod.rs's elevation_range.
func elevationRangeM(class grid.TerrainClass) float64 {
	switch class {
	case grid.Alpine:
		return 4000.0
	case grid.FluvialHumid:
		return 500.0
	case grid.FluvialArid:
		return 2000.0
	case grid.Cratonic:
		return 1000.0
	case grid.Coastal:
		return 200.0
	default:
		return 1000.0
	}
}
