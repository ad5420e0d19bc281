package metrics

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
)

// SlopeResult summarises the distribution of Horn-gradient slope angles
// (degrees) over every interior cell. Ported from
// original_source/.../metrics/slope.rs.
type SlopeResult struct {
	ModeDeg   float64
	MeanDeg   float64
	StdDeg    float64
	Skewness  float64
	Histogram [90]float64 // fraction of interior cells per 1-degree bin, 0-89
}

// ComputeSlope bins the interior-cell slope angle into 90 one-degree bins,
// reporting the modal bin (centre offset by +0.5), the mean/std and the
// Pearson moment skewness of the raw angle distribution.
func ComputeSlope(hf *grid.HeightField) SlopeResult {
	w, h := hf.Width, hf.Height
	if w < 3 || h < 3 {
		return SlopeResult{}
	}
	cs := hf.CellSizeM()

	var angles []float64
	var counts [90]int
	for r := 1; r < h-1; r++ {
		for c := 0; c < w; c++ {
			deg := hf.SlopeDeg(r, c, cs)
			angles = append(angles, deg)
			bin := int(deg)
			if bin > 89 {
				bin = 89
			}
			if bin < 0 {
				bin = 0
			}
			counts[bin]++
		}
	}
	n := len(angles)
	if n == 0 {
		return SlopeResult{}
	}

	var hist [90]float64
	bestBin, bestCount := 0, -1
	for i, cnt := range counts {
		hist[i] = float64(cnt) / float64(n)
		if cnt > bestCount {
			bestCount = cnt
			bestBin = i
		}
	}
	mode := float64(bestBin) + 0.5

	var sum float64
	for _, v := range angles {
		sum += v
	}
	mean := sum / float64(n)

	var variance float64
	for _, v := range angles {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)
	std := math.Sqrt(variance)

	skew := 0.0
	if std >= 1e-12 {
		var m3 float64
		for _, v := range angles {
			d := v - mean
			m3 += d * d * d
		}
		m3 /= float64(n)
		skew = m3 / (std * std * std)
	}

	return SlopeResult{ModeDeg: mode, MeanDeg: mean, StdDeg: std, Skewness: skew, Histogram: hist}
}
