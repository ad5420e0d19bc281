package plates

import "github.com/spectrum-art/terra-incognita/grid"

// RidgeSegment is a great-circle arc on the unit sphere with a coarse main
// arc (used for distance queries) and a zigzagging sub-arc chain with
// transform-fault offsets (used only for the "no straight edge > 500 km"
// guarantee and for rendering).
type RidgeSegment struct {
	MainStart, MainEnd grid.Vec3
	SubArcs            []grid.Vec3 // polyline of points along the zigzag
}

// SubductionArc is a short great-circle segment marking a subduction zone.
type SubductionArc struct {
	Start, End grid.Vec3
}

// Hotspot is an isolated point with a hard-edged influence disc: regime
// classification treats every cell within Radius of Center as inside the
// hotspot, with no Gaussian falloff.
type Hotspot struct {
	Center grid.Vec3
	Radius float64 // radians, radius of the influence disc
}

// GrainField carries, per cell, the local tectonic grain (fabric) direction
// and intensity.
type GrainField struct {
	AngleRad  []float64 // radians, a bearing: 0 = north, increasing clockwise (east = pi/2)
	Intensity []float64 // 0..1
}

// Simulation is the full output of one plate-simulation run: C3's
// PlateSimulation from SPEC_FULL.md §3.
type Simulation struct {
	Width, Height int

	Ridges         []RidgeSegment
	AgeField       []float64 // Myr, per cell
	SubductionArcs []SubductionArc
	ContinentalMask []bool
	Hotspots       []Hotspot

	RegimeField      []grid.TectonicRegime
	Grain            GrainField
	ErodibilityField []float64
}

func (s *Simulation) index(r, c int) int { return r*s.Width + c }
