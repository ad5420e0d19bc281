package plates

import (
	"math/rand"

	"github.com/spectrum-art/terra-incognita/rng"
)

// generateContinentalMask builds a continental/oceanic mask via seeded
// flood-fill, targeting a total continental fraction of
// (1 - fragmentation) * meanContinentalFraction, per SPEC_FULL.md §4.1:
// higher fragmentation means more, smaller continents rather than one
// supercontinent, so we seed proportionally more flood-fill origins as
// fragmentation rises while keeping the overall covered fraction fixed by
// the formula above.
func generateContinentalMask(cfg Config, width, height int) []bool {
	n := width * height
	mask := make([]bool, n)
	target := (1 - cfg.ContinentalFragmentation) * cfg.MeanContinentalFraction
	if target <= 0 {
		return mask
	}
	targetCells := int(target * float64(n))
	if targetCells <= 0 {
		return mask
	}

	r := rand.New(rand.NewSource(rng.SubSeed(cfg.Seed, rng.SeedRidges^0x6311)))

	numSeeds := 1 + int(cfg.ContinentalFragmentation*9)
	frontier := make([]int, 0, numSeeds)
	for i := 0; i < numSeeds; i++ {
		idx := r.Intn(n)
		if !mask[idx] {
			mask[idx] = true
			frontier = append(frontier, idx)
		}
	}
	count := len(frontier)

	neighborOffsets := func(idx int) []int {
		row := idx / width
		col := idx % width
		out := make([]int, 0, 4)
		add := func(dr, dc int) {
			nr := row + dr
			if nr < 0 || nr >= height {
				return
			}
			nc := (col + dc + width) % width
			out = append(out, nr*width+nc)
		}
		add(-1, 0)
		add(1, 0)
		add(0, -1)
		add(0, 1)
		return out
	}

	for count < targetCells && len(frontier) > 0 {
		// Pick a random frontier cell to grow from (random flood fill gives
		// organic, non-circular continent shapes rather than a breadth-first
		// disc).
		i := r.Intn(len(frontier))
		cell := frontier[i]
		neighbors := neighborOffsets(cell)
		grew := false
		r.Shuffle(len(neighbors), func(a, b int) { neighbors[a], neighbors[b] = neighbors[b], neighbors[a] })
		for _, nb := range neighbors {
			if !mask[nb] {
				mask[nb] = true
				frontier = append(frontier, nb)
				count++
				grew = true
				break
			}
		}
		if !grew {
			// This frontier cell is fully surrounded; retire it.
			frontier[i] = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		}
		if count >= targetCells {
			break
		}
	}

	return mask
}
