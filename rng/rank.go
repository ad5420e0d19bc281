package rng

import "sort"

// PercentileRank returns, for each element of values, its fractional rank
// (0..1) within values — i.e. the empirical CDF evaluated at that element.
// Used by C5's smooth-base normalization (SPEC_FULL.md §4.2 step 1).
func PercentileRank(values []float64) []float64 {
	n := len(values)
	rank := make([]float64, n)
	if n == 0 {
		return rank
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })
	for pos, i := range idx {
		rank[i] = float64(pos) / float64(n-1)
		if n == 1 {
			rank[i] = 0
		}
	}
	return rank
}
