// Package grid provides the dense equirectangular-grid primitives shared by
// every stage: the HeightField type, cell<->lat/lon<->unit-vector mapping,
// the Horn (1981) gradient estimator, great-circle geometry, and the
// parallel chunk-worker pool used to spread per-cell work across cores.
package grid

import (
	"fmt"
	"math"
)

// HeightField is a dense, row-major grid of elevations in metres, covering
// the geographic bounds [LatMin, LatMax] x [LonMin, LonMax].
//
// Row 0 is the northernmost row. Cell (r, c) is cell-centred: its latitude
// is strictly inside (LatMin, LatMax), never exactly at a pole.
type HeightField struct {
	Width, Height                   int
	LatMin, LatMax, LonMin, LonMax  float64
	Z                                []float64
}

// NewHeightField allocates a zeroed field of the given geographic bounds.
// W and H must both be >= 3; see the InvalidGrid error kind.
func NewHeightField(width, height int, latMin, latMax, lonMin, lonMax float64) (*HeightField, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("grid: invalid grid %dx%d: %w", width, height, ErrInvalidGrid)
	}
	return &HeightField{
		Width: width, Height: height,
		LatMin: latMin, LatMax: latMax, LonMin: lonMin, LonMax: lonMax,
		Z: make([]float64, width*height),
	}, nil
}

// NewGlobalHeightField is the canonical -90..90 / -180..180 constructor used
// by the orchestrator for whole-planet generation.
func NewGlobalHeightField(width, height int) (*HeightField, error) {
	return NewHeightField(width, height, -90, 90, -180, 180)
}

// Index returns the row-major offset of cell (r, c).
func (h *HeightField) Index(r, c int) int { return r*h.Width + c }

// At returns the elevation at cell (r, c).
func (h *HeightField) At(r, c int) float64 { return h.Z[h.Index(r, c)] }

// Set writes the elevation at cell (r, c).
func (h *HeightField) Set(r, c int, v float64) { h.Z[h.Index(r, c)] = v }

// Inside reports whether (r, c) is a valid cell.
func (h *HeightField) Inside(r, c int) bool {
	return r >= 0 && r < h.Height && c >= 0 && c < h.Width
}

// Interior reports whether (r, c) has a full 3x3 neighbourhood, i.e. is not
// on the border row/column. Longitude wraps (the grid is a full equirectangular
// sweep), so only the north/south border matters for "interior" purposes.
func (h *HeightField) Interior(r, c int) bool {
	return r > 0 && r < h.Height-1
}

// WrapCol wraps a column index into [0, Width), modelling the longitudinal
// seam of a full planetary sweep.
func (h *HeightField) WrapCol(c int) int {
	w := h.Width
	c %= w
	if c < 0 {
		c += w
	}
	return c
}

// CellLatLon returns the cell-centred latitude/longitude in degrees for
// cell (r, c), per the convention in SPEC_FULL.md §3.
func (h *HeightField) CellLatLon(r, c int) (latDeg, lonDeg float64) {
	latDeg = h.LatMax - (float64(r)+0.5)*(h.LatMax-h.LatMin)/float64(h.Height)
	lonDeg = h.LonMin + (float64(c)+0.5)*(h.LonMax-h.LonMin)/float64(h.Width)
	return
}

// CellToVec3 returns the unit vector on the sphere for cell (r, c).
func (h *HeightField) CellToVec3(r, c int) Vec3 {
	lat, lon := h.CellLatLon(r, c)
	return LatLonToVec3(lat, lon)
}

// CellSizeM returns the approximate ground resolution of one cell in metres,
// averaged between the meridional and (mid-latitude) zonal arc length, per
// the Horn-gradient grounding in original_source/.../metrics/gradient.rs.
func (h *HeightField) CellSizeM() float64 {
	const metresPerDegree = 111320.0
	latExtent := h.LatMax - h.LatMin
	lonExtent := h.LonMax - h.LonMin
	cy := latExtent / float64(h.Height) * metresPerDegree
	midLatRad := DegToRad((h.LatMin + h.LatMax) / 2)
	cx := lonExtent / float64(h.Width) * metresPerDegree * math.Cos(midLatRad)
	avg := (cy + cx) / 2
	if avg < 1e-3 {
		return 90.0
	}
	return avg
}

// Min returns the minimum elevation in the field.
func (h *HeightField) Min() float64 { return reduceMin(h.Z) }

// Max returns the maximum elevation in the field.
func (h *HeightField) Max() float64 { return reduceMax(h.Z) }

// Mean returns the mean elevation.
func (h *HeightField) Mean() float64 {
	if len(h.Z) == 0 {
		return 0
	}
	var sum float64
	for _, v := range h.Z {
		sum += v
	}
	return sum / float64(len(h.Z))
}

func reduceMin(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func reduceMax(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// AllFinite reports whether every cell holds a finite value, backing the
// NumericFailure assertion stages run after mutating the field.
func (h *HeightField) AllFinite() bool {
	for _, v := range h.Z {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// D8 neighbour offsets in (N, NE, E, SE, S, SW, W, NW) order, matching the
// tie-break order mandated by SPEC_FULL.md §4.3 and confirmed independently
// in original_source/.../metrics/drainage.rs and geomorphons.rs.
var D8RowOffset = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
var D8ColOffset = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
var D8Dist = [8]float64{1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2}
