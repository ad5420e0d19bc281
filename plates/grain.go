package plates

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
)

// Influence radii (radians) within which a boundary feature contributes to
// a cell's grain vector, per SPEC_FULL.md §4.1 and
// original_source/.../plates/grain_field.rs.
const (
	ridgeGrainInfluenceRad   = 5.0 * math.Pi / 180
	arcGrainInfluenceRad     = 6.0 * math.Pi / 180
	hotspotGrainInfluenceRad = 4.0 * math.Pi / 180
)

// grainArc is a ridge or subduction arc flattened to its coarse main arc
// plus a precomputed great-circle normal, so derive-grain can cull the vast
// majority of (cell, arc) pairs with one dot product before ever calling
// PointToArcDistance.
type grainArc struct {
	a, b          grid.Vec3
	normal        grid.Vec3
	influenceRad  float64
	perpendicular bool // true: grain runs perpendicular to strike (subduction); false: parallel (ridge)
}

// deriveGrainField builds the structural grain vector field: angle (radians,
// a bearing: 0 = north, increasing clockwise) and coherence-weighted
// intensity [0,1] per cell, grounded on
// original_source/.../plates/grain_field.rs:
//   - near ridges, grain runs parallel to the ridge's local strike
//   - near subduction arcs, grain runs perpendicular to the arc's strike
//   - near hotspots, grain runs radially, along the bearing from the cell
//     toward the hotspot centre
//   - inside CratonicShield, intensity is forced to zero (angle unused)
func deriveGrainField(width, height int, regime []grid.TectonicRegime, ridges []RidgeSegment,
	arcs []SubductionArc, hotspots []Hotspot) GrainField {

	n := width * height
	field := GrainField{AngleRad: make([]float64, n), Intensity: make([]float64, n)}

	entries := make([]grainArc, 0, len(ridges)+len(arcs))
	for _, rg := range ridges {
		entries = append(entries, makeGrainArc(rg.MainStart, rg.MainEnd, ridgeGrainInfluenceRad, false))
	}
	for _, a := range arcs {
		entries = append(entries, makeGrainArc(a.Start, a.End, arcGrainInfluenceRad, true))
	}

	hf, _ := grid.NewHeightField(width, height, -90, 90, -180, 180)

	grid.ParallelRows(height, func(row int) {
		for c := 0; c < width; c++ {
			idx := row*width + c
			if regime[idx] == grid.CratonicShield {
				continue // intensity stays 0, angle unused
			}

			p := hf.CellToVec3(row, c)
			east, north := eastNorthFrame(p)

			var sumX, sumY, totalWeight float64
			for _, e := range entries {
				// Early-exit: angular distance from p to the arc's great circle.
				gcDist := math.Asin(clampUnit(math.Abs(e.normal.Dot(p))))
				if gcDist >= e.influenceRad {
					continue
				}
				d := grid.PointToArcDistance(e.a, e.b, p)
				if d >= e.influenceRad {
					continue
				}
				w := 1 - d/e.influenceRad
				strike := ridgeStrikeAngle(p, e.a, e.b, east, north)
				angle := strike
				if e.perpendicular {
					angle += math.Pi / 2
				}
				sumX += w * math.Cos(angle)
				sumY += w * math.Sin(angle)
				totalWeight += w
			}

			for _, hs := range hotspots {
				d := grid.GreatCircleDistance(hs.Center, p)
				if d >= hotspotGrainInfluenceRad || d < 1e-10 {
					continue
				}
				w := 1 - d/hotspotGrainInfluenceRad
				angle := radialAngle(p, hs.Center, east, north)
				sumX += w * math.Cos(angle)
				sumY += w * math.Sin(angle)
				totalWeight += w
			}

			if totalWeight > 1e-9 {
				field.AngleRad[idx] = math.Atan2(sumY, sumX)
				coherence := math.Sqrt(sumX*sumX+sumY*sumY) / totalWeight
				if coherence > 1 {
					coherence = 1
				}
				field.Intensity[idx] = coherence
			}
		}
	})

	return field
}

func makeGrainArc(a, b grid.Vec3, influenceRad float64, perpendicular bool) grainArc {
	normal := a.Cross(b)
	if normal.Len() > 1e-12 {
		normal = normal.Normalize()
	} else {
		normal = grid.NewVec3(0, 0, 1)
	}
	return grainArc{a: a, b: b, normal: normal, influenceRad: influenceRad, perpendicular: perpendicular}
}

// eastNorthFrame returns the local tangent-plane east and north unit vectors
// at point p, used to read off a bearing from a 3D tangent direction.
func eastNorthFrame(p grid.Vec3) (east, north grid.Vec3) {
	latDeg, lonDeg := grid.Vec3ToLatLon(p)
	latRad := grid.DegToRad(latDeg)
	lonRad := grid.DegToRad(lonDeg)
	east = grid.NewVec3(-math.Sin(lonRad), math.Cos(lonRad), 0)
	north = grid.NewVec3(
		-math.Sin(latRad)*math.Cos(lonRad),
		-math.Sin(latRad)*math.Sin(lonRad),
		math.Cos(latRad),
	)
	return
}

// ridgeStrikeAngle is the bearing (radians, 0 = north, clockwise positive) of the
// arc [a,b]'s direction in the tangent plane at p, approximated via the
// tangent at p toward b, projected orthogonal to p.
func ridgeStrikeAngle(p, a, b, east, north grid.Vec3) float64 {
	pDotA := p.Dot(a)
	tangRaw := grid.NewVec3(b.X-a.X*pDotA, b.Y-a.Y*pDotA, b.Z-a.Z*pDotA)
	pDotT := p.Dot(tangRaw)
	tang := tangRaw.Sub(p.Scale(pDotT))
	return math.Atan2(tang.Dot(east), tang.Dot(north))
}

// radialAngle is the bearing, in the tangent plane at p, pointing from p
// toward hotspot centre h.
func radialAngle(p, h, east, north grid.Vec3) float64 {
	pDotH := p.Dot(h)
	dir := grid.NewVec3(h.X-p.X*pDotH, h.Y-p.Y*pDotH, h.Z-p.Z*pDotH)
	return math.Atan2(dir.Dot(east), dir.Dot(north))
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
