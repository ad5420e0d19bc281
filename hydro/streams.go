package hydro

import "sort"

// StreamNetwork marks every cell whose accumulation reaches a_min and
// assigns Strahler stream order via a single ascending-accumulation pass.
// Ported directly from original_source/.../hydraulic/stream_network.rs's
// extract_stream_network, a fully implemented reference (not a stub).
type StreamNetwork struct {
	StreamMask    []bool
	StrahlerOrder []uint16
	MaxOrder      uint16
}

// ExtractStreamNetwork marks stream cells (accumulation >= aMin) and
// assigns each a Strahler order: a head cell (no stream donors) gets order
// 1; at a confluence, order = max(donor orders) + 1 if at least two donors
// share the maximum order, else order = max(donor orders).
func ExtractStreamNetwork(flow *FlowField, aMin uint32) *StreamNetwork {
	w, h := flow.Width, flow.Height
	n := w * h

	streamMask := make([]bool, n)
	for i, acc := range flow.Accumulation {
		streamMask[i] = acc >= aMin
	}

	donorsCount := make([]uint8, n)
	for i := 0; i < n; i++ {
		if !streamMask[i] {
			continue
		}
		if j, ok := receiver(flow, i); ok && streamMask[j] {
			if donorsCount[j] < 255 {
				donorsCount[j]++
			}
		}
	}

	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if streamMask[i] {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool { return flow.Accumulation[order[a]] < flow.Accumulation[order[b]] })

	strahler := make([]uint16, n)
	donorMaxOrder := make([]uint16, n)
	donorMaxCount := make([]uint8, n)

	for _, i := range order {
		var ord uint16
		switch {
		case donorsCount[i] == 0:
			ord = 1
		case donorMaxCount[i] >= 2:
			ord = donorMaxOrder[i] + 1
		default:
			ord = donorMaxOrder[i]
		}
		strahler[i] = ord

		if j, ok := receiver(flow, i); ok && streamMask[j] {
			switch {
			case ord > donorMaxOrder[j]:
				donorMaxOrder[j] = ord
				donorMaxCount[j] = 1
			case ord == donorMaxOrder[j]:
				donorMaxCount[j]++
			}
		}
	}

	var maxOrder uint16
	for _, o := range strahler {
		if o > maxOrder {
			maxOrder = o
		}
	}
	return &StreamNetwork{StreamMask: streamMask, StrahlerOrder: strahler, MaxOrder: maxOrder}
}
