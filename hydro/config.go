// Package hydro implements hydraulic shaping (C6): priority-flood pit
// filling, D8 flow routing and accumulation, Strahler stream-network
// extraction, stream-power erosion, slope-threshold mass wasting, glacial
// carving, and drainage-basin delineation.
//
// Grounded on original_source/crates/terra-core/src/hydraulic/*.rs.
// stream_network.rs, mass_wasting.rs and basins.rs are fully implemented
// references and are ported directly; flow_routing.rs, stream_power.rs and
// glacial.rs are unimplemented todo!() stubs in the source crate (and, in
// stream_power.rs's case, its stub signature doesn't even match the call
// mod.rs makes against it), so those three are written fresh from spec.md
// §4.3's prose, following the same Horn-gradient/D8-offset/cellsize_m
// primitives the rest of the module already shares via the grid package.
package hydro

import "github.com/spectrum-art/terra-incognita/grid"

// Config carries one terrain class's hydraulic shaping parameters.
//
// ErosionIters and AngleOfReposeDeg follow SPEC_FULL.md §4.3's literal
// per-class table, which spec.md itself calls "the authoritative contract".
// This differs from original_source/.../hydraulic/mod.rs's own
// params_for_class (Alpine 30/35, FluvialHumid 50/30, FluvialArid 20/35,
// Cratonic 10/25, Coastal 25/20) -- see DESIGN.md for the precedence
// decision (same rule already applied to C5's smooth-base frequency/gain).
// AMin matches stream_network.rs's A_MIN_* constants, which do agree with
// spec.md's table.
type Config struct {
	Class               grid.TerrainClass
	AMin                uint32
	ErosionIters        int
	AngleOfReposeDeg    float64
	WaterAbundanceScale float64 // wa_scale in K = 0.5*(1 + erodibility*wa_scale)
}

// NewConfig returns the per-class hydraulic parameters with a neutral
// WaterAbundanceScale of 1.0, left for the orchestrator to override from
// resolved GlobalParams.
func NewConfig(class grid.TerrainClass) Config {
	cfg := Config{Class: class, WaterAbundanceScale: 1.0}
	switch class {
	case grid.Alpine:
		cfg.AMin, cfg.ErosionIters, cfg.AngleOfReposeDeg = 200, 20, 35.0
	case grid.FluvialHumid:
		cfg.AMin, cfg.ErosionIters, cfg.AngleOfReposeDeg = 100, 15, 25.0
	case grid.FluvialArid:
		cfg.AMin, cfg.ErosionIters, cfg.AngleOfReposeDeg = 300, 12, 30.0
	case grid.Cratonic:
		cfg.AMin, cfg.ErosionIters, cfg.AngleOfReposeDeg = 500, 6, 20.0
	case grid.Coastal:
		cfg.AMin, cfg.ErosionIters, cfg.AngleOfReposeDeg = 400, 8, 22.0
	}
	return cfg
}
