package synth

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/rng"
)

const detailOctaves = 8

// Generate runs the full C5 pipeline (SPEC_FULL.md §4.2, steps 1-8) and
// returns a populated HeightField: smooth base -> H-field -> anisotropic,
// warped, locally-gained detail fBm -> non-stationary blend -> elevation
// scaling -> hypsometric remap.
func Generate(cfg Config, width, height int) (*grid.HeightField, error) {
	hf, err := grid.NewGlobalHeightField(width, height)
	if err != nil {
		return nil, err
	}
	n := width * height
	if n == 0 {
		return hf, nil
	}

	maxDim := width
	if height > maxDim {
		maxDim = height
	}

	// Step 1: smooth base, 3 octaves, standard gain 2^-0.8.
	smoothSrc := rng.NewSource(rng.SubSeed(cfg.Seed, rng.SeedSmoothFBm))
	smoothFreq := 3.0 / float64(maxDim)
	smoothGain := rng.ConstantGain(0.8)
	smooth := make([]float64, n)
	grid.ParallelRows(height, func(r int) {
		for c := 0; c < width; c++ {
			smooth[r*width+c] = smoothSrc.FBm2(float64(c), float64(r), 3, smoothFreq, 2.0, smoothGain)
		}
	})
	rank := rng.PercentileRank(smooth)

	// Step 2: local H-field.
	hField := generateHField(cfg, width, height)

	// Steps 3-6: anisotropic, warped, locally-gained detail fBm, blended
	// with the smooth base under non-stationary amplitude modulation.
	detailSrc := rng.NewSource(rng.SubSeed(cfg.Seed, rng.SeedDetailFBm))
	warp := newWarper(rng.SubSeed(cfg.Seed, rng.SeedDomainWarp))
	detailFreq := 6.0 / float64(maxDim)

	data := make([]float64, n)
	grid.ParallelRows(height, func(r int) {
		for c := 0; c < width; c++ {
			idx := r*width + c
			localH := hField[idx]

			xa, ya := applyAnisotropy(float64(c)*detailFreq, float64(r)*detailFreq, cfg.GrainAngle, cfg.GrainIntensity)
			xw, yw := warp.warp(xa, ya, 0.015, 0.004)

			gain := math.Pow(2, -(localH + 0.35))
			var detail, amp, freq float64 = 0, 1, 1
			for o := 0; o < detailOctaves; o++ {
				detail += amp * detailSrc.Eval2(xw*freq, yw*freq)
				amp *= gain
				freq *= 2.0
			}

			ampMod := 0.60 + 0.40*clamp01(rank[idx])
			data[idx] = smooth[idx]*0.3 + detail*ampMod*0.7
		}
	})

	// Step 7: scale to the terrain class's elevation range (modulated by
	// the orchestrator's mountain-height and uplift sliders).
	elevRange := elevationRangeM(cfg.Class) * cfg.MountainHeightScale * cfg.UpliftScale
	minV, maxV := data[0], data[0]
	for _, v := range data {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if span := maxV - minV; span > 0 {
		for i, v := range data {
			data[i] = (v - minV) / span * elevRange
		}
	}

	// Step 8: hypsometric remap.
	applyHypsometricShaping(data, targetHI(cfg.Class))

	copy(hf.Z, data)
	return hf, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
