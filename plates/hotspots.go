package plates

import (
	"math/rand"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/rng"
)

const (
	minHotspots = 1
	maxHotspots = 6
)

// generateHotspots places a small random set of isolated volcanic hotspots,
// each with a hard-edged influence disc of 2-6 degrees radius (SPEC_FULL.md
// §4.1); no Gaussian falloff is applied.
func generateHotspots(cfg Config) []Hotspot {
	r := rand.New(rand.NewSource(rng.SubSeed(cfg.Seed, rng.SeedHotspots)))
	count := minHotspots + r.Intn(maxHotspots-minHotspots+1)

	hotspots := make([]Hotspot, 0, count)
	for i := 0; i < count; i++ {
		hotspots = append(hotspots, Hotspot{
			Center: randomUnitVec3(r),
			Radius: grid.DegToRad(2 + r.Float64()*4), // 2-6 degree kernel
		})
	}
	return hotspots
}
