package hydro

import "github.com/spectrum-art/terra-incognita/grid"

const (
	glacialSweepHalfWidth         = 8
	cirqueRadius                  = 5
	cirqueDepthFraction           = 0.05
	overdeepenFraction            = 0.05
	glacialHeadElevationPercentile = 0.80
)

// ApplyGlacialCarving reshapes glacial-stream valleys into parabolic
// U-valley cross-sections and carves hemispherical cirque bowls at glacial
// channel heads above the 80th-percentile elevation band. A no-op when
// glacialMask has no cell outside GlacialNone.
//
// Written fresh from spec.md §4.3 step 7's prose -- the reference crate's
// glacial.rs is an unimplemented todo!() stub. Two details spec.md leaves
// implicit are resolved here and logged in DESIGN.md: the over-deepening
// amount (5% of the local wall-to-floor relief, reusing the same 5%
// magnitude spec.md already uses for cirque depth) and "top 20% elevation"
// (read as the top 20% of the field's min-max range, consistent with the
// range-based percentile splits used elsewhere, e.g. the orographic belt
// strength curve, rather than a full rank percentile).
func ApplyGlacialCarving(hf *grid.HeightField, flow *FlowField, streamNet *StreamNetwork, glacialMask []grid.GlacialClass) {
	w, h := hf.Width, hf.Height
	n := w * h
	if len(glacialMask) != n {
		return
	}
	anyGlacial := false
	for _, g := range glacialMask {
		if g != grid.GlacialNone {
			anyGlacial = true
			break
		}
	}
	if !anyGlacial {
		return
	}

	original := make([]float64, n)
	copy(original, hf.Z)
	zMin, zMax := hf.Min(), hf.Max()
	zRange := zMax - zMin

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			idx := hf.Index(r, c)
			if glacialMask[idx] == grid.GlacialNone || !streamNet.StreamMask[idx] {
				continue
			}

			wallA := original[hf.Index(r, wrapCol(c-glacialSweepHalfWidth, w))]
			wallB := original[hf.Index(r, wrapCol(c+glacialSweepHalfWidth, w))]
			zWall := (wallA + wallB) / 2
			zFloor := original[idx] - overdeepenFraction*(zWall-original[idx])
			k := (zWall - zFloor) / float64(glacialSweepHalfWidth*glacialSweepHalfWidth)

			for x := -glacialSweepHalfWidth; x <= glacialSweepHalfWidth; x++ {
				nidx := hf.Index(r, wrapCol(c+x, w))
				profile := zFloor + k*float64(x*x)
				if profile > original[nidx] {
					hf.Z[nidx] = profile
				}
			}
			hf.Z[idx] = zFloor
		}
	}

	threshold := zMin + glacialHeadElevationPercentile*zRange
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			idx := hf.Index(r, c)
			if glacialMask[idx] == grid.GlacialNone || !streamNet.StreamMask[idx] {
				continue
			}
			if original[idx] < threshold {
				continue
			}
			if !isGlacialHead(flow, glacialMask, streamNet.StreamMask, idx) {
				continue
			}
			carveCirque(hf, r, c, zRange)
		}
	}
}

// isGlacialHead reports whether idx has no upstream neighbour that both
// flows into idx and is itself a glacial stream cell -- i.e. no glacial
// donor. Grounded on spec.md §4.3 step 7's "glacial heads (cells with no
// upstream glacial donor)"; the mod-8 inflow/outflow parity spec.md states
// as an implementation detail is subsumed by directly testing, for each of
// the 8 reverse-offset neighbours, whether that neighbour's own flow
// direction actually points back at idx.
func isGlacialHead(flow *FlowField, glacialMask []grid.GlacialClass, streamMask []bool, idx int) bool {
	w, h := flow.Width, flow.Height
	r, c := idx/w, idx%w
	for k := 0; k < 8; k++ {
		nr := r - grid.D8RowOffset[k]
		if nr < 0 || nr >= h {
			continue
		}
		nc := wrapCol(c-grid.D8ColOffset[k], w)
		nidx := nr*w + nc
		if int(flow.Direction[nidx])-1 != k {
			continue
		}
		if streamMask[nidx] && glacialMask[nidx] != grid.GlacialNone {
			return false
		}
	}
	return true
}

func carveCirque(hf *grid.HeightField, cr, cc int, zRange float64) {
	w, h := hf.Width, hf.Height
	depth := cirqueDepthFraction * zRange
	r2 := float64(cirqueRadius * cirqueRadius)
	for dr := -cirqueRadius; dr <= cirqueRadius; dr++ {
		nr := cr + dr
		if nr < 0 || nr >= h {
			continue
		}
		for dc := -cirqueRadius; dc <= cirqueRadius; dc++ {
			d2 := float64(dr*dr + dc*dc)
			if d2 > r2 {
				continue
			}
			nc := wrapCol(cc+dc, w)
			nidx := hf.Index(nr, nc)
			hf.Z[nidx] -= depth * (1 - d2/r2)
		}
	}
}
