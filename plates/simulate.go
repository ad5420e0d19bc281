package plates

import "github.com/spectrum-art/terra-incognita/grid"

// Simulate runs the full C3 pipeline in the fixed order SPEC_FULL.md §4.1
// requires (each stage consumes the previous one's output): ridges, age,
// subduction, continental crust, hotspots, regime classification, grain,
// erodibility.
func Simulate(cfg Config, width, height int) (*Simulation, error) {
	if _, err := grid.NewHeightField(width, height, -90, 90, -180, 180); err != nil {
		return nil, err
	}

	ridges := generateRidges(cfg)
	ageField := computeAgeField(cfg, width, height, ridges)
	subductionArcs := generateSubductionArcs(cfg, width, height, ageField)
	continentalMask := generateContinentalMask(cfg, width, height)
	hotspots := generateHotspots(cfg)
	regimeField := classifyRegimeField(width, height, ridges, subductionArcs, hotspots, continentalMask, ageField)
	grainField := deriveGrainField(width, height, regimeField, ridges, subductionArcs, hotspots)
	erodibilityField := generateErodibilityField(cfg, width, height, regimeField)

	return &Simulation{
		Width:  width,
		Height: height,

		Ridges:          ridges,
		AgeField:        ageField,
		SubductionArcs:  subductionArcs,
		ContinentalMask: continentalMask,
		Hotspots:        hotspots,

		RegimeField:      regimeField,
		Grain:            grainField,
		ErodibilityField: erodibilityField,
	}, nil
}
