package hydro

import (
	"math"
	"sort"

	"github.com/spectrum-art/terra-incognita/grid"
)

// ApplyMassWasting performs one pass of slope-threshold mass wasting:
// every interior cell whose Horn-gradient slope exceeds
// tan(angleOfReposeDeg) transfers just enough material to its steepest D8
// downslope neighbour to bring the pair to the repose angle. Cells are
// processed high-to-low elevation so a transfer is visible to the next
// cell in the same sweep; any in-bounds neighbour may receive material.
//
// Ported directly from original_source/.../hydraulic/mass_wasting.rs's
// apply_mass_wasting, a fully implemented reference (not a stub), with
// east/west neighbour lookups wrapped via wrapCol for the grid's longitude
// seam -- the original crate's test grids are flat and non-wrapping, so
// this is the same kind of adaptation already applied to the erodibility
// field's box blur.
func ApplyMassWasting(hf *grid.HeightField, angleOfReposeDeg float64) {
	w, h := hf.Width, hf.Height
	if h < 3 {
		return
	}
	cs := hf.CellSizeM()
	tanRepose := math.Tan(angleOfReposeDeg * math.Pi / 180)

	order := make([]int, 0, (h-2)*w)
	for r := 1; r < h-1; r++ {
		for c := 0; c < w; c++ {
			order = append(order, hf.Index(r, c))
		}
	}
	sort.Slice(order, func(a, b int) bool { return hf.Z[order[a]] > hf.Z[order[b]] })

	for _, idx := range order {
		r, c := idx/w, idx%w
		dzdx, dzdy := hf.HornGradient(r, c, cs)
		slopeMag := math.Sqrt(dzdx*dzdx + dzdy*dzdy)
		if slopeMag <= tanRepose {
			continue
		}

		z0 := hf.Z[idx]
		bestDrop := 0.0
		bestIdx, bestDist := -1, 0.0
		for k := 0; k < 8; k++ {
			nr := r + grid.D8RowOffset[k]
			if nr < 0 || nr >= h {
				continue
			}
			nc := wrapCol(c+grid.D8ColOffset[k], w)
			nidx := hf.Index(nr, nc)
			dist := cs * grid.D8Dist[k]
			drop := (z0 - hf.Z[nidx]) / dist
			if drop > bestDrop {
				bestDrop = drop
				bestIdx = nidx
				bestDist = dist
			}
		}

		if bestIdx >= 0 {
			z1 := hf.Z[bestIdx]
			transfer := ((z0 - z1) - tanRepose*bestDist) / 2
			if transfer > 0 {
				hf.Z[idx] = z0 - transfer
				hf.Z[bestIdx] = z1 + transfer
			}
		}
	}
}
