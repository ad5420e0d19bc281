package metrics

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
)

// multifractalOrders are the q exponents evaluated for the structure
// function; q=0 is skipped (H(0) is undefined/stored as 0) and indices 0 and
// 4 (q=-2 and q=+2) give the multifractal width.
var multifractalOrders = []float64{-2, -1, 0, 1, 2}

// MultifractalResult holds H(q) for each order in multifractalOrders and the
// multifractal width H(-2)-H(2). Ported from
// original_source/.../metrics/multifractal.rs.
type MultifractalResult struct {
	HOfQ  [5]float64
	Width float64
	Valid bool
}

// ComputeMultifractal fits, for each q-th order structure function
// S_q(h) = mean(|dz_h|^q) over lags 2..8 (accumulated over horizontal and
// vertical pairs), a log-log slope zeta(q); H(q) = zeta(q)/q. For q<0, pairs
// with |dz|<1e-6 are skipped to avoid blowing up the negative power, and the
// whole field is Valid=false if, at any q, fewer than 10 pairs are collected
// across all lags (skipped pairs included) or more than 90% of pairs were
// skipped.
func ComputeMultifractal(hf *grid.HeightField) MultifractalResult {
	w, h := hf.Width, hf.Height
	var result MultifractalResult

	for qi, q := range multifractalOrders {
		if q == 0 {
			result.HOfQ[qi] = 0
			continue
		}

		var logH, logS []float64
		totalPairs, skipped := 0, 0

		for _, lag := range hurstLags {
			var sum float64
			var count int

			collect := func(dz float64) {
				totalPairs++
				absDz := math.Abs(dz)
				if q < 0 && absDz < 1e-6 {
					skipped++
					return
				}
				sum += math.Pow(absDz, q)
				count++
			}

			if w > lag {
				for r := 0; r < h; r++ {
					for c := 0; c < w-lag; c++ {
						collect(hf.At(r, c+lag) - hf.At(r, c))
					}
				}
			}
			if h > lag {
				for r := 0; r < h-lag; r++ {
					for c := 0; c < w; c++ {
						collect(hf.At(r+lag, c) - hf.At(r, c))
					}
				}
			}
			if count == 0 {
				continue
			}
			logH = append(logH, math.Log(float64(lag)))
			logS = append(logS, safeLog(sum/float64(count)))
		}

		if totalPairs < 10 || (totalPairs > 0 && float64(skipped)/float64(totalPairs) > 0.9) || len(logH) < 2 {
			return MultifractalResult{Valid: false}
		}

		zeta, _, _ := olsFit(logH, logS)
		result.HOfQ[qi] = zeta / q
	}

	result.Width = result.HOfQ[0] - result.HOfQ[4]
	result.Valid = true
	return result
}
