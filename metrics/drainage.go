package metrics

import (
	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/hydro"
)

// streamThreshold is the minimum upstream contributing area (cells) for a
// cell to count as part of the stream network, matching
// original_source/.../metrics/drainage.rs's STREAM_THRESHOLD.
const streamThreshold = 50

// DrainageDensityResult is total stream-network length over tile area.
type DrainageDensityResult struct {
	DensityKmPerKm2 float64
}

// ComputeDrainageDensity measures channel density via D8 flow routing and
// accumulation. Rather than re-deriving its own independent flow routing (as
// original_source/.../metrics/drainage.rs does, duplicating the hydraulic
// module's logic with a slightly different no-pit-fill variant), this
// reuses hydro.ComputeD8Flow directly -- the same flow field the hydraulic
// shaping stage itself computes -- and extracts the stream network from it
// at the fixed streamThreshold. See DESIGN.md.
func ComputeDrainageDensity(hf *grid.HeightField) DrainageDensityResult {
	n := hf.Width * hf.Height
	if n == 0 {
		return DrainageDensityResult{}
	}
	cs := hf.CellSizeM()

	flow := hydro.ComputeD8Flow(hf)
	net := hydro.ExtractStreamNetwork(flow, streamThreshold)

	streamCount := 0
	for _, s := range net.StreamMask {
		if s {
			streamCount++
		}
	}

	streamLengthKm := float64(streamCount) * cs / 1000.0
	tileAreaKm2 := (float64(hf.Height) * cs / 1000.0) * (float64(hf.Width) * cs / 1000.0)

	if tileAreaKm2 <= 0 {
		return DrainageDensityResult{}
	}
	return DrainageDensityResult{DensityKmPerKm2: streamLengthKm / tileAreaKm2}
}
