package synth

import (
	"math"
	"sort"
)

// applyHypsometricShaping remaps z in place so its hypsometric integral
// approaches targetHI: cells are ranked by elevation, each percentile p is
// bent through p^gamma (gamma = max(1/targetHI - 1, 0.1)), and elevations
// are reassigned within the original [min,max] range in that new rank
// order. Grounded on
// original_source/.../noise/hypsometric_shape.rs's apply_hypsometric_shaping.
func applyHypsometricShaping(z []float64, targetHI float64) {
	n := len(z)
	if n == 0 {
		return
	}

	target := targetHI
	if target < 0.05 {
		target = 0.05
	} else if target > 0.95 {
		target = 0.95
	}
	gamma := 1.0/target - 1.0
	if gamma < 0.1 {
		gamma = 0.1
	}

	min, max := z[0], z[0]
	for _, v := range z {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	zrange := max - min
	if zrange < 1.0 {
		return
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return z[order[a]] < z[order[b]] })

	out := make([]float64, n)
	for rank, idx := range order {
		p := float64(rank) / float64(n-1)
		pNew := math.Pow(p, gamma)
		out[idx] = min + pNew*zrange
	}
	copy(z, out)
}
