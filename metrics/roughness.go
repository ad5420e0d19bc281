package metrics

import (
	"math"
	"sort"

	"github.com/spectrum-art/terra-incognita/grid"
)

// RoughnessElevResult is the Pearson correlation between local surface
// roughness and elevation rank. Ported from
// original_source/.../metrics/roughness_elev.rs.
type RoughnessElevResult struct {
	PearsonR float64
}

// ComputeRoughnessElev measures whether rough terrain coincides with high or
// low elevation: for every interior cell, roughness is the population
// std-dev of its 3x3 neighbourhood, elevation is expressed as a fractional
// percentile rank via binary search over the sorted interior-cell
// elevations, and PearsonR is the correlation between the two series.
func ComputeRoughnessElev(hf *grid.HeightField) RoughnessElevResult {
	w, h := hf.Width, hf.Height
	if w < 3 || h < 3 {
		return RoughnessElevResult{PearsonR: math.NaN()}
	}

	var interiorZ []float64
	for r := 1; r < h-1; r++ {
		for c := 0; c < w; c++ {
			interiorZ = append(interiorZ, hf.At(r, c))
		}
	}
	if len(interiorZ) == 0 {
		return RoughnessElevResult{PearsonR: math.NaN()}
	}
	sorted := make([]float64, len(interiorZ))
	copy(sorted, interiorZ)
	sort.Float64s(sorted)
	nInterior := float64(len(sorted))

	rank := func(z float64) float64 {
		pos := sort.SearchFloat64s(sorted, z)
		return float64(pos) / nInterior
	}

	roughness := make([]float64, 0, len(interiorZ))
	elevRank := make([]float64, 0, len(interiorZ))
	i := 0
	for r := 1; r < h-1; r++ {
		for c := 0; c < w; c++ {
			roughness = append(roughness, neighborhoodStdDev(hf, r, c))
			elevRank = append(elevRank, rank(interiorZ[i]))
			i++
		}
	}

	r, ok := pearson(roughness, elevRank)
	if !ok {
		return RoughnessElevResult{PearsonR: math.NaN()}
	}
	return RoughnessElevResult{PearsonR: r}
}

func neighborhoodStdDev(hf *grid.HeightField, r, c int) float64 {
	cw := hf.WrapCol
	var sum, sumSq float64
	const k = 9.0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			v := hf.At(r+dr, cw(c+dc))
			sum += v
			sumSq += v * v
		}
	}
	mean := sum / k
	variance := sumSq/k - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// pearson returns the Pearson correlation coefficient of x and y, or false
// if either series has variance below 1e-12 (flat/degenerate input).
func pearson(x, y []float64) (float64, bool) {
	n := float64(len(x))
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var varX, varY, cov float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		varX += dx * dx
		varY += dy * dy
		cov += dx * dy
	}
	varX /= n
	varY /= n
	cov /= n
	if varX < 1e-12 || varY < 1e-12 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
