package metrics

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/hydro"
)

// moransSubBlock is the sub-basin tile size (cells) used when deriving
// Moran's I directly from a HeightField rather than from pre-computed
// drainage basins.
const moransSubBlock = 64

// ComputeMoransIFromBasins evaluates 1-D queen-contiguity (immediate
// neighbour) spatial autocorrelation of hypsometric integral across basins,
// the Phase-6 integration path used once drainage basins are already
// computed by hydro.DelineateBasins. Returns NaN for fewer than 4 basins.
func ComputeMoransIFromBasins(basins []hydro.DrainageBasin) float64 {
	if len(basins) < 4 {
		return math.NaN()
	}
	hi := make([]float64, len(basins))
	for i, b := range basins {
		hi[i] = b.HypsometricIntegral
	}
	return moran1DQueen(hi)
}

// ComputeMoransIFromHeightField partitions hf into non-overlapping 64x64
// sub-tiles, computes the hypsometric integral of each, and evaluates queen-
// contiguity (8-neighbour) Moran's I on the resulting grid. Returns NaN when
// the field is too small to form a 2x2 grid of sub-tiles, and 0 when every
// sub-tile has the same hypsometric integral.
func ComputeMoransIFromHeightField(hf *grid.HeightField) float64 {
	nr := hf.Height / moransSubBlock
	nc := hf.Width / moransSubBlock
	if nr < 2 || nc < 2 {
		return math.NaN()
	}

	hiGrid := make([]float64, nr*nc)
	valid := make([]bool, nr*nc)
	for br := 0; br < nr; br++ {
		for bc := 0; bc < nc; bc++ {
			var min, max, sum float64
			min, max = math.Inf(1), math.Inf(-1)
			count := 0
			for r := 0; r < moransSubBlock; r++ {
				for c := 0; c < moransSubBlock; c++ {
					z := hf.At(br*moransSubBlock+r, bc*moransSubBlock+c)
					if z < min {
						min = z
					}
					if z > max {
						max = z
					}
					sum += z
					count++
				}
			}
			if count == 0 || max-min < 1.0 {
				continue
			}
			mean := sum / float64(count)
			hiGrid[br*nc+bc] = (mean - min) / (max - min)
			valid[br*nc+bc] = true
		}
	}

	return moranGridQueen(hiGrid, valid, nr, nc)
}

func moran1DQueen(values []float64) float64 {
	n := len(values)
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var num, den, wSum float64
	for i := 0; i < n; i++ {
		d := values[i] - mean
		den += d * d
		for _, j := range [2]int{i - 1, i + 1} {
			if j >= 0 && j < n {
				num += d * (values[j] - mean)
				wSum++
			}
		}
	}
	if den == 0 || wSum == 0 {
		return math.NaN()
	}
	stat := (float64(n) / wSum) * (num / den)
	if math.IsInf(stat, 0) {
		return math.NaN()
	}
	return stat
}

func moranGridQueen(values []float64, valid []bool, nr, nc int) float64 {
	var validCount int
	var sum float64
	for i, ok := range valid {
		if ok {
			validCount++
			sum += values[i]
		}
	}
	if validCount < 4 {
		return math.NaN()
	}
	mean := sum / float64(validCount)

	var num, den, wSum float64
	for i, ok := range valid {
		if !ok {
			continue
		}
		vi := values[i]
		den += (vi - mean) * (vi - mean)
		ri, ci := i/nc, i%nc
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				rn, cn := ri+dr, ci+dc
				if rn < 0 || cn < 0 || rn >= nr || cn >= nc {
					continue
				}
				j := rn*nc + cn
				if !valid[j] {
					continue
				}
				num += (vi - mean) * (values[j] - mean)
				wSum++
			}
		}
	}
	if wSum == 0 {
		return math.NaN()
	}
	if den == 0 {
		// All valid sub-tiles share one value: no deviation to correlate.
		return 0
	}
	stat := (float64(validCount) / wSum) * (num / den)
	if math.IsInf(stat, 0) {
		return math.NaN()
	}
	return stat
}
