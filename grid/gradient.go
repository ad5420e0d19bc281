package grid

import "math"

// HornGradient estimates (dz/dx, dz/dy) at the interior cell (r, c) using
// the Horn (1981) 3x3 weighted central-difference kernel, per
// original_source/.../metrics/gradient.rs. The caller must ensure (r, c) is
// interior (see HeightField.Interior); longitude wraps via WrapCol so the
// kernel is well defined on every row's east/west neighbours.
func (h *HeightField) HornGradient(r, c int, cellsizeM float64) (dzdx, dzdy float64) {
	cw := h.WrapCol
	n := h.At(r-1, c)
	s := h.At(r+1, c)
	e := h.At(r, cw(c+1))
	wst := h.At(r, cw(c-1))
	ne := h.At(r-1, cw(c+1))
	nw := h.At(r-1, cw(c-1))
	se := h.At(r+1, cw(c+1))
	sw := h.At(r+1, cw(c-1))

	dzdx = ((ne + 2*e + se) - (nw + 2*wst + sw)) / (8 * cellsizeM)
	dzdy = ((nw + 2*n + ne) - (sw + 2*s + se)) / (8 * cellsizeM)
	return
}

// SlopeDeg returns the slope angle in degrees at an interior cell, derived
// from the Horn gradient magnitude.
func (h *HeightField) SlopeDeg(r, c int, cellsizeM float64) float64 {
	dzdx, dzdy := h.HornGradient(r, c, cellsizeM)
	mag := math.Sqrt(dzdx*dzdx + dzdy*dzdy)
	return RadToDeg(math.Atan(mag))
}
