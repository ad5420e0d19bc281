// Package metrics computes the ten geomorphometric realism metrics used to
// score a generated terrain against per-class empirical reference bands, and
// aggregates them into a single weighted realism score.
//
// Grounded on original_source/.../metrics/*.rs: each exported Compute*
// function below is a direct port of one Rust module's statistics, adapted
// to the grid package's HeightField and longitude-wrapping conventions.
package metrics

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
)

// HurstResult is the Hurst exponent H and the R^2 of the log-log fit it was
// derived from. Ported from original_source/.../metrics/hurst.rs.
type HurstResult struct {
	H        float64
	RSquared float64
}

var hurstLags = []int{2, 3, 4, 5, 6, 7, 8}

// ComputeHurst estimates self-affinity via the variogram method: the
// structure function D(h) = mean[(z(x+h)-z(x))^2] is accumulated over both
// horizontal and vertical pairs at each lag in hurstLags (no detrending), and
// H is half the slope of an OLS fit of log(D(h)) against log(h), since
// D(h) scales as h^(2H).
func ComputeHurst(hf *grid.HeightField) HurstResult {
	w, h := hf.Width, hf.Height

	logH := make([]float64, 0, len(hurstLags))
	logD := make([]float64, 0, len(hurstLags))

	for _, lag := range hurstLags {
		var sum float64
		var count int

		if w > lag {
			for r := 0; r < h; r++ {
				for c := 0; c < w-lag; c++ {
					d := hf.At(r, c+lag) - hf.At(r, c)
					sum += d * d
					count++
				}
			}
		}
		if h > lag {
			for r := 0; r < h-lag; r++ {
				for c := 0; c < w; c++ {
					d := hf.At(r+lag, c) - hf.At(r, c)
					sum += d * d
					count++
				}
			}
		}
		if count == 0 {
			continue
		}
		gamma := sum / float64(count)
		logH = append(logH, math.Log(float64(lag)))
		logD = append(logD, safeLog(gamma))
	}

	maxGamma := 0.0
	for _, lg := range logD {
		if v := math.Exp(lg); v > maxGamma {
			maxGamma = v
		}
	}
	if maxGamma < 1e-6 || len(logH) < 2 {
		return HurstResult{H: math.NaN(), RSquared: 0}
	}

	slope, _, r2 := olsFit(logH, logD)
	return HurstResult{H: slope / 2, RSquared: r2}
}

func safeLog(v float64) float64 {
	if v <= 0 {
		return math.Log(1e-12)
	}
	return math.Log(v)
}

// olsFit returns the slope, intercept and R^2 of a simple linear regression
// y = slope*x + intercept, shared by hurst.rs and multifractal.rs's
// structure-function fits.
func olsFit(x, y []float64) (slope, intercept, r2 float64) {
	n := float64(len(x))
	if n == 0 {
		return math.NaN(), math.NaN(), 0
	}
	var sumX, sumY, sumXX, sumXY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumXY += x[i] * y[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return math.NaN(), math.NaN(), 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssTot, ssRes float64
	for i := range x {
		pred := slope*x[i] + intercept
		ssRes += (y[i] - pred) * (y[i] - pred)
		ssTot += (y[i] - meanY) * (y[i] - meanY)
	}
	if ssTot < 1e-12 {
		return slope, intercept, 0
	}
	return slope, intercept, 1 - ssRes/ssTot
}
