package metrics

import (
	"sort"

	"github.com/spectrum-art/terra-incognita/grid"
)

// HypsometricResult is the hypsometric integral and a 100-point elevation
// CDF. Ported from original_source/.../metrics/hypsometric.rs.
type HypsometricResult struct {
	Integral float64
	CDF      [100]float64
}

// ComputeHypsometric returns (mean-min)/(max-min) over the whole field plus
// a percentile-sampled elevation CDF normalised to [0,1]. A field with less
// than 1m of relief is treated as flat and the integral is reported as 0
// rather than left undefined.
func ComputeHypsometric(hf *grid.HeightField) HypsometricResult {
	n := len(hf.Z)
	if n == 0 {
		return HypsometricResult{}
	}

	min, max := hf.Min(), hf.Max()
	rng := max - min
	if rng < 1.0 {
		return HypsometricResult{}
	}

	mean := hf.Mean()
	integral := (mean - min) / rng

	sorted := make([]float64, n)
	copy(sorted, hf.Z)
	sort.Float64s(sorted)

	var cdf [100]float64
	for i := 0; i < 100; i++ {
		idx := (i * n) / 100
		cdf[i] = (sorted[idx] - min) / rng
	}

	return HypsometricResult{Integral: integral, CDF: cdf}
}
