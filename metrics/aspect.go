package metrics

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
)

// flatGradientThreshold is the minimum gradient magnitude (~tan 0.01deg) for
// a cell to carry a meaningful aspect, matching
// original_source/.../metrics/aspect.rs's FLAT_GRADIENT_THRESHOLD.
const flatGradientThreshold = 1.745e-4

// AspectResult is the circular statistics of slope-facing direction over
// every non-flat interior cell. Ported from
// original_source/.../metrics/aspect.rs.
type AspectResult struct {
	CircularVariance float64
	MeanAspectDeg    float64
	FlatFraction     float64
}

// ComputeAspect computes the clockwise-from-north aspect angle at every
// interior cell whose Horn gradient exceeds flatGradientThreshold, then
// derives the circular mean and circular variance (1-R, where R is the mean
// resultant length) over the non-flat population.
func ComputeAspect(hf *grid.HeightField) AspectResult {
	w, h := hf.Width, hf.Height
	if w < 3 || h < 3 {
		return AspectResult{CircularVariance: math.NaN(), FlatFraction: 1.0}
	}
	cs := hf.CellSizeM()

	total := 0
	flat := 0
	var sumCos, sumSin float64
	for r := 1; r < h-1; r++ {
		for c := 0; c < w; c++ {
			total++
			dzdx, dzdy := hf.HornGradient(r, c, cs)
			mag := math.Sqrt(dzdx*dzdx + dzdy*dzdy)
			if mag < flatGradientThreshold {
				flat++
				continue
			}
			theta := math.Atan2(dzdx, -dzdy)
			sumCos += math.Cos(theta)
			sumSin += math.Sin(theta)
		}
	}

	nonFlat := total - flat
	flatFraction := 1.0
	if total > 0 {
		flatFraction = float64(flat) / float64(total)
	}
	if nonFlat == 0 {
		return AspectResult{CircularVariance: math.NaN(), FlatFraction: flatFraction}
	}

	rx := sumCos / float64(nonFlat)
	ry := sumSin / float64(nonFlat)
	r := math.Sqrt(rx*rx + ry*ry)

	meanDeg := math.Atan2(ry, rx) * 180 / math.Pi
	if meanDeg < 0 {
		meanDeg += 360
	}

	return AspectResult{CircularVariance: 1 - r, MeanAspectDeg: meanDeg, FlatFraction: flatFraction}
}
