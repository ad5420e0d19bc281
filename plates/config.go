// Package plates implements the tectonic plate simulation (C3): great-circle
// ridges, age field, subduction arcs, continental crust, hotspots, and the
// derived regime/grain/erodibility fields that climate, noise synthesis and
// hydraulic shaping all consume.
//
// Grounded on original_source/crates/terra-core/src/plates/*.rs, re-expressed
// against grid.HeightField-shaped dense fields instead of the Rust crate's
// structures, and on the teacher's Config{} / NewXxxConfig() pattern
// (config.go) for parameter plumbing.
package plates

// Config mirrors the teacher's NewGeoConfig()-style parameter struct: a
// plain struct populated with defaults, then selectively overridden by the
// orchestrator from resolved GlobalParams.
type Config struct {
	Seed                    uint64
	ContinentalFragmentation float64 // 0..1
	MeanContinentalFraction float64  // target continental area fraction at fragmentation=0
}

// NewConfig returns a Config with sane defaults, following the teacher's
// NewGeoConfig()/NewCivConfig() convention.
func NewConfig(seed uint64, fragmentation float64) Config {
	return Config{
		Seed:                    seed,
		ContinentalFragmentation: fragmentation,
		MeanContinentalFraction: 0.35,
	}
}
