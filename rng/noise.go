package rng

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source wraps opensimplex.Noise, generalizing the teacher's noise/noise.go
// Noise type: where the teacher fixed a persistence-based per-octave
// amplitude (amplitude[i] = persistence^i) baked in at construction, Source
// exposes Eval2/Eval3 directly and leaves octave summation to FBm, whose
// caller supplies an arbitrary per-octave gain function. That generality is
// what lets the same Source back three different fBm calibrations in this
// module: C2's plain 2^-0.8 gain, C4's fixed-persistence MAP noise, and
// C5's H-dependent 2^-(H_local+0.35) detail gain.
type Source struct {
	OS opensimplex.Noise
}

// NewSource returns a normalized ([-1,1] range) simplex source for seed.
func NewSource(seed int64) *Source {
	return &Source{OS: opensimplex.NewNormalized(seed)}
}

// Eval2 samples the raw noise field at (x, y).
func (s *Source) Eval2(x, y float64) float64 { return s.OS.Eval2(x, y) }

// Eval3 samples the raw noise field at (x, y, z).
func (s *Source) Eval3(x, y, z float64) float64 { return s.OS.Eval3(x, y, z) }

// GainFunc returns the per-octave amplitude multiplier for octave index o
// (0-based).
type GainFunc func(octave int) float64

// ConstantGain returns a GainFunc for a standard fBm amplitude falloff of
// 2^(-h) per octave, i.e. the "standard gain" referenced throughout
// SPEC_FULL.md (e.g. §4.2 step 1's 2^(-0.8)).
func ConstantGain(h float64) GainFunc {
	g := math.Pow(2, -h)
	return func(octave int) float64 { return math.Pow(g, float64(octave)) }
}

// FBm2 evaluates a fractional-Brownian-motion sum of octaves octaves of s at
// (x, y), with base frequency baseFreq, geometric frequency lacunarity
// between octaves, and per-octave amplitude gain(octave). The result is
// normalized by the sum of amplitudes actually used, so it stays within
// roughly [-1, 1] regardless of how many octaves are summed.
func (s *Source) FBm2(x, y float64, octaves int, baseFreq, lacunarity float64, gain GainFunc) float64 {
	var sum, ampSum float64
	freq := baseFreq
	for o := 0; o < octaves; o++ {
		amp := gain(o)
		sum += amp * s.Eval2(x*freq, y*freq)
		ampSum += amp
		freq *= lacunarity
	}
	if ampSum == 0 {
		return 0
	}
	return sum / ampSum
}

// FBm2Aniso is FBm2 with independent x/y base frequencies, used by C4's MAP
// noise (freq_x = 2/width, freq_y = 2/height — the source grid is not
// square, so a single scalar base frequency would distort the noise).
func (s *Source) FBm2Aniso(x, y float64, octaves int, baseFreqX, baseFreqY, lacunarity float64, gain GainFunc) float64 {
	var sum, ampSum float64
	freq := 1.0
	for o := 0; o < octaves; o++ {
		amp := gain(o)
		sum += amp * s.Eval2(x*baseFreqX*freq, y*baseFreqY*freq)
		ampSum += amp
		freq *= lacunarity
	}
	if ampSum == 0 {
		return 0
	}
	return sum / ampSum
}
