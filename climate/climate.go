package climate

import "github.com/spectrum-art/terra-incognita/grid"

// Simulate runs the full C4 pipeline: latitudinal MAP base, regional noise
// perturbation, orographic correction, seasonality, glaciation mask.
// Grounded on original_source/.../climate/mod.rs's simulate_climate, which
// fixes this exact stage order.
func Simulate(cfg Config, regime []grid.TectonicRegime, width, height int) (*Layer, error) {
	hf, err := grid.NewHeightField(width, height, -90, 90, -180, 180)
	if err != nil {
		return nil, err
	}

	mapField := make([]float64, width*height)
	for r := 0; r < height; r++ {
		lat, _ := hf.CellLatLon(r, 0)
		base := mapBaseMM(lat, cfg.WaterAbundance)
		for c := 0; c < width; c++ {
			mapField[r*width+c] = base
		}
	}

	noise := generateMAPNoise(cfg, width, height)
	for i := range mapField {
		mapField[i] *= noise[i]
	}

	applyOrographicCorrection(mapField, regime, width, height)

	seasonalityField := generateSeasonality(mapField, width, height)
	glaciationMask := computeGlaciationMask(cfg.Glaciation, width, height)

	return &Layer{
		Width:  width,
		Height: height,

		MAPField:         mapField,
		SeasonalityField: seasonalityField,
		GlaciationMask:   glaciationMask,
	}, nil
}
