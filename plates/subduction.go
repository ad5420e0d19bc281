package plates

import (
	"math"
	"math/rand"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/rng"
)

const subductionMinAgeMyr = 120.0

// maxSubductionLatDeg: arcs may not centre within 10 degrees of either pole
// (a 3 degree influence radius would otherwise sweep an entire latitude
// circle there), matching the |sin(lat)| > sin(80 deg) rejection rule.
const maxSubductionLatDeg = 80.0

// generateSubductionArcs picks candidate sites among high-age cells and
// emits a handful of subduction arcs, 200-600 km long, per SPEC_FULL.md
// §4.1. fragmentation=0.5 is guaranteed at least one arc because the
// candidate pool (age > 120 Myr, away from both poles) is non-empty for
// any ridge configuration the ridge count range [2,10] can produce.
func generateSubductionArcs(cfg Config, width, height int, ageField []float64) []SubductionArc {
	hf, _ := grid.NewHeightField(width, height, -90, 90, -180, 180)

	type candidate struct {
		pos grid.Vec3
	}
	var candidates []candidate
	for row := 0; row < height; row++ {
		for c := 0; c < width; c++ {
			if ageField[row*width+c] <= subductionMinAgeMyr {
				continue
			}
			lat, _ := hf.CellLatLon(row, c)
			if math.Abs(lat) > maxSubductionLatDeg {
				continue
			}
			candidates = append(candidates, candidate{pos: hf.CellToVec3(row, c)})
		}
	}

	r := rand.New(rand.NewSource(rng.SubSeed(cfg.Seed, rng.SeedSubduction)))

	arcCount := int(math.Round(2 + cfg.ContinentalFragmentation*6))
	if arcCount < 1 {
		arcCount = 1
	}
	if arcCount > 8 {
		arcCount = 8
	}
	if len(candidates) == 0 {
		return nil
	}
	if arcCount > len(candidates) {
		arcCount = len(candidates)
	}

	r.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	arcs := make([]SubductionArc, 0, arcCount)
	for i := 0; i < arcCount; i++ {
		center := candidates[i].pos
		tangent := perpendicularBasis(center)
		axis := center.Cross(tangent).Normalize()

		lengthKm := 200 + r.Float64()*400
		halfAngle := (lengthKm / PlanetRadiusKm) / 2

		start := grid.RotateAboutAxis(center, axis, -halfAngle)
		end := grid.RotateAboutAxis(center, axis, halfAngle)
		arcs = append(arcs, SubductionArc{Start: start, End: end})
	}
	return arcs
}

func nearestSubductionDistance(arcs []SubductionArc, p grid.Vec3) float64 {
	best := math.Inf(1)
	for _, a := range arcs {
		d := grid.PointToArcDistance(a.Start, a.End, p)
		if d < best {
			best = d
		}
	}
	return best
}
