package metrics

import (
	"math"
	"sort"

	"github.com/spectrum-art/terra-incognita/grid"
)

// Geomorphon is one of the 10 canonical Jasiewicz & Stepinski (2013)
// landform classes a cell's 8-directional ternary visibility pattern maps
// to. Ported from original_source/.../metrics/geomorphons.rs.
type Geomorphon int

const (
	GeomorphonFlat Geomorphon = iota
	GeomorphonPeak
	GeomorphonRidge
	GeomorphonShoulder
	GeomorphonSpur
	GeomorphonSlope
	GeomorphonHollow
	GeomorphonFootslope
	GeomorphonValley
	GeomorphonPit
)

// geomorphonDirMult holds the horizontal-distance multiplier (1 or sqrt 2) of
// each of the 8 look directions, in the same N, NE, E, SE, S, SW, W, NW order
// as grid.D8RowOffset/D8ColOffset.
var geomorphonDirMult = [8]float64{1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2}

// GeomorphonResult is the per-cell classification, both histograms, and the
// L1 distance from a terrain class's empirical reference distribution.
type GeomorphonResult struct {
	Classes    []Geomorphon
	Hist498    []float64
	Hist10     [10]float64
	L1Distance float64
}

// geomorphonReference holds the Phase-1 empirical 10-class landform
// histograms per terrain class, order
// [Flat,Peak,Ridge,Shoulder,Spur,Slope,Hollow,Footslope,Valley,Pit].
var geomorphonReference = map[grid.TerrainClass][10]float64{
	grid.Alpine:       {0.1046, 0.0068, 0.0715, 0.0188, 0.1422, 0.4195, 0.1292, 0.0294, 0.0755, 0.0024},
	grid.Coastal:      {0.5484, 0.0016, 0.0374, 0.0930, 0.0341, 0.1262, 0.0304, 0.0777, 0.0495, 0.0017},
	grid.Cratonic:     {0.6938, 0.0029, 0.0238, 0.0524, 0.0251, 0.0960, 0.0187, 0.0642, 0.0214, 0.0017},
	grid.FluvialArid:  {0.1543, 0.0080, 0.0759, 0.0473, 0.1183, 0.3479, 0.1032, 0.0634, 0.0782, 0.0035},
	grid.FluvialHumid: {0.4525, 0.0035, 0.0518, 0.0756, 0.0583, 0.1828, 0.0469, 0.0599, 0.0650, 0.0037},
}

// ClassifyGeomorphons classifies every cell by looking outward searchRadius
// cells in each of the 8 directions, recording whether the cell is looking
// "up" (+1), "down" (-1), or neither (0, within flatThresholdDeg) relative
// to the highest zenith/lowest nadir angle seen in that direction, then
// mapping the resulting 8-element ternary pattern to one of 10 classes.
func ClassifyGeomorphons(hf *grid.HeightField, searchRadius int, flatThresholdDeg float64, tc grid.TerrainClass) GeomorphonResult {
	rows, cols := hf.Height, hf.Width
	n := rows * cols
	cs := hf.CellSizeM()
	flatRad := flatThresholdDeg * math.Pi / 180
	cw := hf.WrapCol

	classes := make([]Geomorphon, n)
	hist10 := [10]int{}
	canonCounts := make(map[uint32]int)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			z0 := hf.At(r, c)
			var pattern [8]int8

			for d := 0; d < 8; d++ {
				dr, dc := grid.D8RowOffset[d], grid.D8ColOffset[d]
				hScale := cs * geomorphonDirMult[d]
				maxZenith := math.Inf(-1)
				minZenith := math.Inf(1)

				for t := 1; t <= searchRadius; t++ {
					nr := r + dr*t
					if nr < 0 || nr >= rows {
						break
					}
					nc := cw(c + dc*t)
					z1 := hf.At(nr, nc)
					horiz := hScale * float64(t)
					angle := math.Atan2(z1-z0, horiz)
					if angle > maxZenith {
						maxZenith = angle
					}
					if angle < minZenith {
						minZenith = angle
					}
				}

				switch {
				case maxZenith > flatRad:
					pattern[d] = 1
				case minZenith < -flatRad:
					pattern[d] = -1
				default:
					pattern[d] = 0
				}
			}

			cls := ternaryToClass(pattern)
			idx := r*cols + c
			classes[idx] = cls
			hist10[cls]++
			canonCounts[canonicalCode(pattern)]++
		}
	}

	var hist10f [10]float64
	total := float64(n)
	for i, cnt := range hist10 {
		hist10f[i] = float64(cnt) / total
	}

	type canonPair struct {
		code  uint32
		count int
	}
	pairs := make([]canonPair, 0, len(canonCounts))
	for code, cnt := range canonCounts {
		pairs = append(pairs, canonPair{code, cnt})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].code < pairs[j].code })
	hist498 := make([]float64, len(pairs))
	for i, p := range pairs {
		hist498[i] = float64(p.count) / total
	}

	reference := geomorphonReference[tc]
	var l1 float64
	for i := range hist10f {
		l1 += math.Abs(hist10f[i] - reference[i])
	}
	l1 /= 2

	return GeomorphonResult{Classes: classes, Hist498: hist498, Hist10: hist10f, L1Distance: l1}
}

// ternaryToClass maps an 8-element ternary visibility pattern to one of the
// 10 canonical landform classes by the count of +1 (concave/looking-up) and
// -1 (convex/looking-down) directions.
func ternaryToClass(pattern [8]int8) Geomorphon {
	var nPos, nNeg int
	for _, v := range pattern {
		switch v {
		case 1:
			nPos++
		case -1:
			nNeg++
		}
	}
	switch {
	case nPos == 0 && nNeg == 0:
		return GeomorphonFlat
	case nPos == 8 || nPos == 7 && nNeg == 0:
		return GeomorphonPit
	case nNeg == 8 || nNeg == 7 && nPos == 0:
		return GeomorphonPeak
	case nNeg == 0 && nPos >= 6:
		return GeomorphonValley
	case nPos == 0 && nNeg >= 6:
		return GeomorphonRidge
	case nNeg <= 1 && nPos >= 4:
		return GeomorphonFootslope
	case nPos <= 1 && nNeg >= 4:
		return GeomorphonShoulder
	case nPos > nNeg:
		return GeomorphonHollow
	case nNeg > nPos:
		return GeomorphonSpur
	default:
		return GeomorphonSlope
	}
}

// canonicalCode encodes pattern as base-3 (each element shifted to 0..2) and
// returns the minimum value over all 8 cyclic rotations, giving a rotation-
// invariant identity for the 498-class histogram.
func canonicalCode(pattern [8]int8) uint32 {
	encode := func(p [8]int8) uint32 {
		var acc uint32
		for _, v := range p {
			acc = acc*3 + uint32(v+1)
		}
		return acc
	}
	best := encode(pattern)
	rot := pattern
	for i := 1; i < 8; i++ {
		var next [8]int8
		for j := 0; j < 8; j++ {
			next[j] = rot[(j+1)%8]
		}
		rot = next
		if c := encode(rot); c < best {
			best = c
		}
	}
	return best
}
