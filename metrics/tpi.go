package metrics

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
)

// tpiRadii are the three fixed kernel radii (cells) TPI is evaluated at.
var tpiRadii = [3]int{5, 10, 20}

// TpiResult is the topographic-position-index standard deviation at three
// scales and their inter-scale ratios. Ported from
// original_source/.../metrics/tpi.rs.
type TpiResult struct {
	StdR1, StdR2, StdR3     float64
	RatioR1R2, RatioR2R3    float64
	IsScaleDependent        bool
}

type kernelOffset struct{ dr, dc int }

// ComputeTPI computes TPI(r,c,R) = z(r,c) - mean(z in circular kernel of
// radius R) at radii 5, 10 and 20 cells, reporting the std-dev of TPI at
// each radius and whether the two inter-scale ratios differ by more than
// 0.1 (scale-dependent relief structure). Radii of 10 cells and above
// subsample at a step of 4 to bound cost on large fields, matching the reference's
// documented 500ms/512x512 budget; std is stable under this subsampling.
func ComputeTPI(hf *grid.HeightField) TpiResult {
	stdR1 := tpiStdAtRadius(hf, tpiRadii[0])
	stdR2 := tpiStdAtRadius(hf, tpiRadii[1])
	stdR3 := tpiStdAtRadius(hf, tpiRadii[2])

	ratioR1R2 := math.NaN()
	if !math.IsNaN(stdR1) && !math.IsNaN(stdR2) && stdR2 != 0 {
		ratioR1R2 = stdR1 / stdR2
	}
	ratioR2R3 := math.NaN()
	if !math.IsNaN(stdR2) && !math.IsNaN(stdR3) && stdR3 != 0 {
		ratioR2R3 = stdR2 / stdR3
	}

	isScaleDependent := false
	if !math.IsNaN(ratioR1R2) && !math.IsNaN(ratioR2R3) {
		isScaleDependent = math.Abs(ratioR1R2-ratioR2R3) > 0.1
	}

	return TpiResult{
		StdR1: stdR1, StdR2: stdR2, StdR3: stdR3,
		RatioR1R2: ratioR1R2, RatioR2R3: ratioR2R3,
		IsScaleDependent: isScaleDependent,
	}
}

func circularKernel(radius int) []kernelOffset {
	var kernel []kernelOffset
	r2 := radius * radius
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr*dr+dc*dc <= r2 {
				kernel = append(kernel, kernelOffset{dr, dc})
			}
		}
	}
	return kernel
}

func tpiStdAtRadius(hf *grid.HeightField, radius int) float64 {
	minDim := 2*radius + 1
	if hf.Width < minDim || hf.Height < minDim {
		return math.NaN()
	}

	step := 1
	if radius >= 10 {
		step = 4
	}

	kernel := circularKernel(radius)
	kLen := float64(len(kernel))
	cw := hf.WrapCol

	// Longitude wraps (see grid.HeightField.Interior), so only the row range
	// is clipped to the pole borders; the column range covers the full
	// width, with the kernel itself wrapping via cw.
	var tpis []float64
	for r := radius; r < hf.Height-radius; r += step {
		for c := 0; c < hf.Width; c += step {
			center := hf.At(r, c)
			var sum float64
			for _, k := range kernel {
				sum += hf.At(r+k.dr, cw(c+k.dc))
			}
			tpis = append(tpis, center-sum/kLen)
		}
	}
	if len(tpis) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, v := range tpis {
		sum += v
	}
	mean := sum / float64(len(tpis))
	var variance float64
	for _, v := range tpis {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(tpis))
	return math.Sqrt(variance)
}
