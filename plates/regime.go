package plates

import (
	"github.com/spectrum-art/terra-incognita/grid"
)

const (
	subductionInfluenceDeg = 3.0
	ridgeInfluenceDeg      = 3.0
	// cratonLowAgeMyr is the concrete threshold instantiating SPEC_FULL.md
	// §4.1's "continental interior, low age -> CratonicShield" rule.
	cratonLowAgeMyr = 80.0
)

// classifyRegimeField assigns each cell a TectonicRegime, applying the tie-
// break order from SPEC_FULL.md §4.1:
//  1. within 3 deg of a subduction arc, on continental crust -> ActiveCompressional
//  2. within 3 deg of a ridge -> ActiveExtensional
//  3. within a hotspot's kernel -> VolcanicHotspot
//  4. continental interior, low age -> CratonicShield
//  5. otherwise -> PassiveMargin
func classifyRegimeField(width, height int, ridges []RidgeSegment, arcs []SubductionArc,
	hotspots []Hotspot, continental []bool, ageField []float64) []grid.TectonicRegime {

	hf, _ := grid.NewHeightField(width, height, -90, 90, -180, 180)
	regime := make([]grid.TectonicRegime, width*height)

	subductionRad := grid.DegToRad(subductionInfluenceDeg)
	ridgeRad := grid.DegToRad(ridgeInfluenceDeg)

	grid.ParallelRows(height, func(row int) {
		for c := 0; c < width; c++ {
			i := row*width + c
			p := hf.CellToVec3(row, c)

			switch {
			case len(arcs) > 0 && continental[i] && nearestSubductionDistance(arcs, p) <= subductionRad:
				regime[i] = grid.ActiveCompressional
			case len(ridges) > 0 && nearestRidgeMainArcDistance(ridges, p) <= ridgeRad:
				regime[i] = grid.ActiveExtensional
			case withinHotspot(hotspots, p):
				regime[i] = grid.VolcanicHotspot
			case continental[i] && ageField[i] < cratonLowAgeMyr:
				regime[i] = grid.CratonicShield
			default:
				regime[i] = grid.PassiveMargin
			}
		}
	})
	return regime
}

func withinHotspot(hotspots []Hotspot, p grid.Vec3) bool {
	for _, hs := range hotspots {
		if grid.GreatCircleDistance(hs.Center, p) <= hs.Radius {
			return true
		}
	}
	return false
}
