package climate

import "math"

// mapBaseMM returns the latitudinal MAP base value in mm/yr: an ITCZ
// equatorial Gaussian peak, a subtropical arid-belt negative Gaussian, a
// temperate-westerlies secondary peak, and a polar floor, scaled linearly by
// waterAbundance against the Earth reference of 0.55. Grounded on
// original_source/.../climate/latitude_bands.rs's map_base_mm.
func mapBaseMM(latDeg, waterAbundance float64) float64 {
	latAbs := math.Abs(latDeg)

	equatorial := 2200.0 * math.Exp(-latAbs*latAbs/288.0)
	subtropicalArid := -800.0 * math.Exp(-sq(latAbs-28.0)/128.0)
	temperate := 600.0 * math.Exp(-sq(latAbs-50.0)/450.0)
	const polarBase = 200.0

	base := equatorial + subtropicalArid + temperate + polarBase
	if base < 80.0 {
		base = 80.0
	}
	return base * (waterAbundance / 0.55)
}

func sq(v float64) float64 { return v * v }
