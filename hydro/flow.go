package hydro

import (
	"container/heap"
	"sort"

	"github.com/spectrum-art/terra-incognita/grid"
)

// FlowField is the D8 direction and accumulation result of one flow-routing
// pass on a pit-filled surface. Direction 0 means sink/flat; codes 1..8
// index grid.D8RowOffset/D8ColOffset at code-1, in the fixed
// N,NE,E,SE,S,SW,W,NW tie-break order (SPEC_FULL.md §3's FlowField.dir
// convention). Grounded on
// original_source/.../hydraulic/flow_routing.rs's FlowField shape and
// stream_network.rs/basins.rs's consumption of it (direction==0 or a
// neighbour outside the raster both mean "no downstream receiver"); the
// routing algorithm itself is written fresh from spec.md §4.3 steps 1-3,
// since compute_d8_flow is an unimplemented stub in the source crate.
type FlowField struct {
	Direction     []uint8
	Accumulation  []uint32
	FilledZ       []float64
	Width, Height int
}

type pitHeapItem struct {
	idx int
	z   float64
}

type pitHeap []pitHeapItem

func (h pitHeap) Len() int           { return len(h) }
func (h pitHeap) Less(i, j int) bool { return h[i].z < h[j].z }
func (h pitHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *pitHeap) Push(x any)        { *h = append(*h, x.(pitHeapItem)) }
func (h *pitHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// PitFill raises every interior sink to the elevation of its lowest
// boundary-connected outflow path, via the Barnes (2014) priority-flood
// algorithm seeded from the north/south border cells (the grid's longitude
// seam wraps, so there is no east/west edge to drain off of). Grounded on
// spec.md §4.3 step 1.
func PitFill(hf *grid.HeightField) []float64 {
	w, h := hf.Width, hf.Height
	n := w * h
	filled := make([]float64, n)
	visited := make([]bool, n)

	pq := make(pitHeap, 0, n)
	for c := 0; c < w; c++ {
		for _, r := range [2]int{0, h - 1} {
			idx := hf.Index(r, c)
			if visited[idx] {
				continue
			}
			visited[idx] = true
			filled[idx] = hf.At(r, c)
			pq = append(pq, pitHeapItem{idx: idx, z: filled[idx]})
		}
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pitHeapItem)
		r, c := item.idx/w, item.idx%w
		for k := 0; k < 8; k++ {
			nr := r + grid.D8RowOffset[k]
			if nr < 0 || nr >= h {
				continue
			}
			nc := wrapCol(c+grid.D8ColOffset[k], w)
			nidx := hf.Index(nr, nc)
			if visited[nidx] {
				continue
			}
			visited[nidx] = true
			z := hf.At(nr, nc)
			if z < item.z {
				z = item.z
			}
			filled[nidx] = z
			heap.Push(&pq, pitHeapItem{idx: nidx, z: z})
		}
	}
	return filled
}

// ComputeD8Flow pit-fills hf, assigns a D8 flow direction to every cell
// (steepest distance-weighted drop, ties broken by the fixed N,NE,E,SE,
// S,SW,W,NW neighbour order), and accumulates upstream drainage area via a
// single descending-elevation topological pass. Grounded on spec.md §4.3
// steps 1-3.
func ComputeD8Flow(hf *grid.HeightField) *FlowField {
	w, h := hf.Width, hf.Height
	n := w * h
	filled := PitFill(hf)

	direction := make([]uint8, n)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			idx := hf.Index(r, c)
			z0 := filled[idx]
			bestDrop := 0.0
			bestCode := uint8(0)
			for k := 0; k < 8; k++ {
				nr := r + grid.D8RowOffset[k]
				if nr < 0 || nr >= h {
					continue
				}
				nc := wrapCol(c+grid.D8ColOffset[k], w)
				nidx := hf.Index(nr, nc)
				drop := (z0 - filled[nidx]) / grid.D8Dist[k]
				if drop > bestDrop {
					bestDrop = drop
					bestCode = uint8(k + 1)
				}
			}
			direction[idx] = bestCode
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return filled[order[a]] > filled[order[b]] })

	accumulation := make([]uint32, n)
	for i := range accumulation {
		accumulation[i] = 1
	}
	ff := &FlowField{Direction: direction, Accumulation: accumulation, FilledZ: filled, Width: w, Height: h}
	for _, idx := range order {
		j, ok := receiver(ff, idx)
		if !ok {
			continue
		}
		accumulation[j] += accumulation[idx]
	}
	return ff
}

// receiver returns the flat index of the cell that idx drains into and
// true, or (0, false) if idx has no downstream receiver (direction==0, or
// its neighbour falls off the north/south edge). Shared by stream network
// extraction and basin delineation.
func receiver(flow *FlowField, idx int) (int, bool) {
	code := flow.Direction[idx]
	if code == 0 {
		return 0, false
	}
	w, h := flow.Width, flow.Height
	k := int(code) - 1
	r, c := idx/w, idx%w
	nr := r + grid.D8RowOffset[k]
	if nr < 0 || nr >= h {
		return 0, false
	}
	nc := wrapCol(c+grid.D8ColOffset[k], w)
	return nr*w + nc, true
}

func wrapCol(c, w int) int {
	c %= w
	if c < 0 {
		c += w
	}
	return c
}
