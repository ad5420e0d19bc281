package climate

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
)

// computeGlaciationMask returns a zonally-uniform glaciation class per cell:
// Active poleward of (90 - glaciation*60) degrees, Former extending a
// further glaciation*30 degrees equatorward, None elsewhere. Grounded on
// original_source/.../climate/glaciation.rs's compute_glaciation_mask.
func computeGlaciationMask(glaciation float64, width, height int) []grid.GlacialClass {
	n := width * height
	result := make([]grid.GlacialClass, n)
	if n == 0 {
		return result
	}

	activeThreshold := 90.0 - glaciation*60.0
	formerThreshold := activeThreshold - glaciation*30.0

	for r := 0; r < height; r++ {
		latDeg := 90.0 - (float64(r)+0.5)/float64(height)*180.0
		latAbs := math.Abs(latDeg)

		class := grid.GlacialNone
		switch {
		case latAbs >= activeThreshold:
			class = grid.GlacialActive
		case latAbs >= formerThreshold:
			class = grid.GlacialFormer
		}

		for c := 0; c < width; c++ {
			result[r*width+c] = class
		}
	}
	return result
}
