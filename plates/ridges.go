package plates

import (
	"math"
	"math/rand"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/rng"
)

// PlanetRadiusKm is the nominal sphere radius used to convert angular
// lengths to surface distances throughout plate simulation.
const PlanetRadiusKm = 6371.0

// generateRidges produces the ridge count, main arcs, and zigzag sub-arcs
// per SPEC_FULL.md §4.1: count in [2,10] linearly interpolated from
// fragmentation, each arc >= 60 degrees geodesic, transform-fault offsets
// <= 2.5 degrees perpendicular to the main direction at breakpoints spaced
// under 5 degrees apart, with no straight sub-arc segment projecting to more
// than 500 km.
func generateRidges(cfg Config) []RidgeSegment {
	r := rand.New(rand.NewSource(rng.SubSeed(cfg.Seed, rng.SeedRidges)))

	count := int(math.Round(2 + cfg.ContinentalFragmentation*8))
	if count < 2 {
		count = 2
	}
	if count > 10 {
		count = 10
	}

	ridges := make([]RidgeSegment, 0, count)
	for i := 0; i < count; i++ {
		ridges = append(ridges, generateOneRidge(r))
	}
	return ridges
}

func generateOneRidge(r *rand.Rand) RidgeSegment {
	axis := randomUnitVec3(r)
	ref := perpendicularBasis(axis)
	tangent := axis.Cross(ref).Normalize()

	pointAt := func(t float64) grid.Vec3 {
		return ref.Scale(math.Cos(t)).Add(tangent.Scale(math.Sin(t))).Normalize()
	}

	// Arc length: at least 60 degrees geodesic, up to 180 degrees (half the
	// great circle) so arcs stay within one hemisphere's worth of ridge.
	lengthDeg := 60 + r.Float64()*120
	tStart := r.Float64() * 2 * math.Pi
	tEnd := tStart + grid.DegToRad(lengthDeg)

	mainStart := pointAt(tStart)
	mainEnd := pointAt(tEnd)

	// Breakpoint spacing: at most 5 degrees, tightened to maxSegmentDeg/sqrt(2)
	// (500 km / (pi/180 * R) degrees, with a safety margin), and each
	// breakpoint's perpendicular offset differs from the previous one's by at
	// most that spacing. Both legs of a segment are then bounded by the
	// spacing, so the straight segment between consecutive sub-arc points
	// cannot exceed 500 km on the surface.
	maxSegmentDeg := grid.RadToDeg(500.0 / PlanetRadiusKm) * 0.9
	breakpointSpacingDeg := math.Min(5.0, maxSegmentDeg/math.Sqrt2)
	numBreakpoints := int(math.Ceil(lengthDeg/breakpointSpacingDeg)) + 1

	subArcs := make([]grid.Vec3, 0, numBreakpoints)
	prevOffsetDeg := 0.0
	for i := 0; i < numBreakpoints; i++ {
		frac := float64(i) / float64(numBreakpoints-1)
		t := tStart + frac*(tEnd-tStart)
		base := pointAt(t)

		offsetDeg := (r.Float64()*2 - 1) * 2.5
		if i > 0 {
			offsetDeg = math.Max(prevOffsetDeg-breakpointSpacingDeg, math.Min(prevOffsetDeg+breakpointSpacingDeg, offsetDeg))
		}
		prevOffsetDeg = offsetDeg
		offset := grid.PerpendicularOffset(mainStart, mainEnd, base, grid.DegToRad(offsetDeg))
		subArcs = append(subArcs, offset)
	}

	return RidgeSegment{MainStart: mainStart, MainEnd: mainEnd, SubArcs: subArcs}
}

// randomUnitVec3 returns a uniformly-distributed random point on the unit
// sphere (Marsaglia's method via independent lat/lon would bias toward the
// poles; instead sample in Cartesian space and normalize, which is uniform).
func randomUnitVec3(r *rand.Rand) grid.Vec3 {
	for {
		x := r.Float64()*2 - 1
		y := r.Float64()*2 - 1
		z := r.Float64()*2 - 1
		v := grid.NewVec3(x, y, z)
		l := v.Len()
		if l > 1e-6 && l <= 1 {
			return v.Normalize()
		}
	}
}

// perpendicularBasis returns a unit vector perpendicular to axis.
func perpendicularBasis(axis grid.Vec3) grid.Vec3 {
	up := grid.NewVec3(0, 0, 1)
	cand := axis.Cross(up)
	if cand.Len() < 1e-6 {
		up = grid.NewVec3(1, 0, 0)
		cand = axis.Cross(up)
	}
	return cand.Normalize()
}

// nearestRidgeMainArcDistance returns the minimum angular distance (radians)
// from p to the nearest ridge's coarse main arc.
func nearestRidgeMainArcDistance(ridges []RidgeSegment, p grid.Vec3) float64 {
	best := math.Inf(1)
	for _, rg := range ridges {
		d := grid.PointToArcDistance(rg.MainStart, rg.MainEnd, p)
		if d < best {
			best = d
		}
	}
	return best
}
