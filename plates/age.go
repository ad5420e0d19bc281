package plates

import (
	"math"
	"math/rand"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/rng"
)

// maxAgeDistanceRad is the angular distance from a ridge at which age
// saturates at the 200 Myr ceiling. A quarter of the sphere's
// circumference is "far from every ridge" for any realistic ridge count.
const maxAgeDistanceRad = math.Pi / 2

// computeAgeField fills, per cell, age = geodesic distance (radians) to the
// nearest ridge's main arc, remapped linearly to [0, 200] Myr with a small
// per-ridge seed-dependent bias (SPEC_FULL.md §4.1).
func computeAgeField(cfg Config, width, height int, ridges []RidgeSegment) []float64 {
	r := rand.New(rand.NewSource(rng.SubSeed(cfg.Seed, rng.SeedRidges^0x4A6E5)))
	bias := make([]float64, len(ridges))
	for i := range bias {
		bias[i] = (r.Float64()*2 - 1) * 10 // +/- 10 Myr bias per ridge
	}

	age := make([]float64, width*height)
	hf, _ := grid.NewHeightField(width, height, -90, 90, -180, 180)

	grid.ParallelRows(height, func(row int) {
		for c := 0; c < width; c++ {
			p := hf.CellToVec3(row, c)
			best := math.Inf(1)
			nearest := -1
			for i, rg := range ridges {
				d := grid.PointToArcDistance(rg.MainStart, rg.MainEnd, p)
				if d < best {
					best = d
					nearest = i
				}
			}
			t := best / maxAgeDistanceRad
			if t > 1 {
				t = 1
			}
			a := t * 200
			if nearest >= 0 {
				a += bias[nearest]
			}
			if a < 0 {
				a = 0
			}
			if a > 200 {
				a = 200
			}
			age[row*width+c] = a
		}
	})
	return age
}
