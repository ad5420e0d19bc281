package metrics

import (
	"math"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/hydro"
)

// band is an empirical p10-p90 reference range for one metric under one
// terrain class, from the Phase-1 empirical study.
type band struct{ p10, p90 float64 }

// scaleNeutralScore is substituted for a metric whose measurement is not
// comparable to the tile-scale reference data once cellsize exceeds
// planetaryCellsizeM. Hurst and Geomorphon are neutralised unconditionally;
// Multifractal and Drainage are neutralised only when their own raw value
// signals an unreliable measurement at that scale (mirroring the reference
// crate's actual conditions, adopted per SPEC_FULL.md's scale-mismatch
// detail rather than a blanket cellsize rule). TPI is not neutralised. The
// reference crate uses 0.65 for this constant; this implementation follows
// the distilled specification's literal 0.5 instead. See DESIGN.md.
const scaleNeutralScore = 0.5

// planetaryCellsizeM is the cellsize threshold above which tile-scale
// empirical bands stop being comparable to the raw metric.
const planetaryCellsizeM = 1000.0

// geomorphonL1PassThreshold is the geomorphon L1-distance boundary below
// which the landform-mix match is considered a pass.
const geomorphonL1PassThreshold = 0.15

var hurstBand = map[grid.TerrainClass]band{
	grid.Alpine:       {0.683, 0.819},
	grid.Coastal:      {0.416, 0.572},
	grid.Cratonic:     {0.482, 0.662},
	grid.FluvialArid:  {0.551, 0.782},
	grid.FluvialHumid: {0.357, 0.629},
}

var roughnessBand = map[grid.TerrainClass]band{
	grid.Alpine:       {0.023, 0.712},
	grid.Coastal:      {-0.156, 0.240},
	grid.Cratonic:     {0.053, 0.632},
	grid.FluvialArid:  {-0.087, 0.629},
	grid.FluvialHumid: {-0.184, 0.560},
}

var multifractalBand = map[grid.TerrainClass]band{
	grid.Alpine:       {0.204, 1.123},
	grid.Coastal:      {0.149, 0.740},
	grid.Cratonic:     {0.123, 0.648},
	grid.FluvialArid:  {0.258, 0.907},
	grid.FluvialHumid: {0.170, 0.888},
}

var hypsometricBand = map[grid.TerrainClass]band{
	grid.Alpine:       {0.196, 0.513},
	grid.Coastal:      {0.334, 0.606},
	grid.Cratonic:     {0.137, 0.435},
	grid.FluvialArid:  {0.217, 0.521},
	grid.FluvialHumid: {0.218, 0.509},
}

var drainageBand = map[grid.TerrainClass]band{
	grid.Alpine:       {1.407, 3.187},
	grid.Coastal:      {0.024, 1.886},
	grid.Cratonic:     {0.084, 0.972},
	grid.FluvialArid:  {1.351, 2.793},
	grid.FluvialHumid: {0.060, 2.662},
}

var moransBand = map[grid.TerrainClass]band{
	grid.Alpine:       {0.021, 0.355},
	grid.Coastal:      {0.054, 0.404},
	grid.Cratonic:     {0.027, 0.350},
	grid.FluvialArid:  {0.062, 0.404},
	grid.FluvialHumid: {0.068, 0.378},
}

var slopeModeBand = map[grid.TerrainClass]band{
	grid.Alpine:       {0.5, 20.5},
	grid.Coastal:      {0.5, 1.5},
	grid.Cratonic:     {0.5, 0.5},
	grid.FluvialArid:  {0.5, 2.5},
	grid.FluvialHumid: {0.5, 2.5},
}

var tpiBand = map[grid.TerrainClass]band{
	grid.Alpine:       {0.074, 0.130},
	grid.Coastal:      {0.224, 0.347},
	grid.Cratonic:     {0.132, 0.334},
	grid.FluvialArid:  {0.088, 0.198},
	grid.FluvialHumid: {0.167, 0.393},
}

// aspectBandValue is the same circular-variance target for every terrain class.
var aspectBandValue = band{0.4, 0.85}

// Per-metric weights summing to 1.0, per spec.md §4.5's weighting table
// (used here in place of the reference crate's own Aspect/Drainage weights
// of 0.08/0.12, which sum to 1.10 overall due to an arithmetic slip -- see
// DESIGN.md).
const (
	wHurst      = 0.10
	wRoughness  = 0.10
	wMultifrac  = 0.08
	wSlope      = 0.08
	wAspect     = 0.10
	wTPI        = 0.08
	wHyps       = 0.12
	wGeomorphon = 0.14
	wDrainage   = 0.10
	wMorans     = 0.10
)

// MetricScore is one metric's raw value, normalised 0-1 score and pass/fail
// verdict, tagged with the subsystem it is attributed to for diagnostics.
type MetricScore struct {
	Name      string
	RawValue  float64
	Score01   float64
	Passed    bool
	Subsystem string // "noise_synth", "hydraulic", or "both"
}

// RealismScore is the full weighted-mean realism score (0-100) plus the
// individual metric breakdown.
type RealismScore struct {
	Total   float64
	Metrics []MetricScore
}

// bandScore linearly interpolates a 0-1 score from value's distance to a
// p10-p90 reference band: 1.0 inside the band, degrading to 0.0 at one band-
// width outside either edge.
func bandScore(value float64, b band) float64 {
	width := b.p90 - b.p10
	if width < 0 {
		width = -width
	}
	if width < 1e-6 {
		width = 1e-6
	}
	switch {
	case value >= b.p10 && value <= b.p90:
		return 1.0
	case value < b.p10:
		return clampUnit01(1.0 - (b.p10-value)/width)
	default:
		return clampUnit01(1.0 - (value-b.p90)/width)
	}
}

func clampUnit01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// geomorphonScore scores the geomorphon L1 distance (lower is better):
// 1.0 at or below geomorphonL1PassThreshold, degrading linearly to 0.0 at
// twice that distance.
func geomorphonScore(l1 float64) float64 {
	if l1 <= geomorphonL1PassThreshold {
		return 1.0
	}
	return clampUnit01(1.0 - (l1-geomorphonL1PassThreshold)/geomorphonL1PassThreshold)
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clampUnitRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ComputeRealismScore runs all ten geomorphometric metrics against hf,
// compares each to its per-class empirical reference band, and aggregates
// them into a single weighted 0-100 realism score. basins, already computed
// by the hydraulic shaping stage, feed the Moran's I metric; pass nil to
// fall back to the heightfield-partition path (used by standalone metric
// testing).
func ComputeRealismScore(hf *grid.HeightField, tc grid.TerrainClass, basins []hydro.DrainageBasin) RealismScore {
	hurstR := ComputeHurst(hf)
	roughR := ComputeRoughnessElev(hf)
	multiR := ComputeMultifractal(hf)
	slopeR := ComputeSlope(hf)
	aspectR := ComputeAspect(hf)
	tpiR := ComputeTPI(hf)
	hypsR := ComputeHypsometric(hf)

	cs := hf.CellSizeM()
	planetary := cs > planetaryCellsizeM

	// Flat-cell threshold for geomorphon classification: at tile scale this
	// follows the reference's absolute-elevation sensitivity (90m x tan 1deg
	// from the Phase-1 SRTM study); at planetary scale that formula collapses
	// to near-zero and misclassifies almost everything as non-flat, so a
	// fixed slope-based threshold calibrated against the FluvialHumid
	// reference Flat fraction is used instead.
	var flatDeg float64
	if planetary {
		flatDeg = 0.012
	} else {
		flatDeg = clampUnitRange(grid.RadToDeg(math.Atan(1.57/cs)), 0.001, 2.0)
	}
	geomR := ClassifyGeomorphons(hf, 3, flatDeg, tc)
	drainR := ComputeDrainageDensity(hf)

	var moransVal float64
	if len(basins) >= 4 {
		moransVal = ComputeMoransIFromBasins(basins)
	} else {
		moransVal = ComputeMoransIFromHeightField(hf)
	}

	tpiVal := tpiR.RatioR1R2

	var hScore float64
	if planetary {
		hScore = scaleNeutralScore
	} else {
		hScore = bandScore(finiteOr(hurstR.H, 0), hurstBand[tc])
	}
	reScore := bandScore(finiteOr(roughR.PearsonR, 0), roughnessBand[tc])

	// Multifractal width is unreliable at planetary scale specifically when
	// it reads above the class's p90 (broad-scale H-field variation
	// overestimating it) or below zero (a q=-2 numerical artefact on
	// near-flat terrain); otherwise it is scored normally even at that
	// cellsize.
	mfRaw := finiteOr(multiR.Width, 0)
	var mfScore float64
	if planetary && (mfRaw > multifractalBand[tc].p90 || mfRaw < 0) {
		mfScore = scaleNeutralScore
	} else {
		mfScore = bandScore(mfRaw, multifractalBand[tc])
	}

	slScore := bandScore(finiteOr(slopeR.ModeDeg, 0), slopeModeBand[tc])
	asScore := bandScore(finiteOr(aspectR.CircularVariance, 0.5), aspectBandValue)
	tpScore := bandScore(finiteOr(tpiVal, 0), tpiBand[tc])
	hyScore := bandScore(finiteOr(hypsR.Integral, 0), hypsometricBand[tc])

	var gmScore float64
	if planetary {
		gmScore = scaleNeutralScore
	} else {
		gmScore = geomorphonScore(finiteOr(geomR.L1Distance, 1))
	}

	// Drainage density is unreliable at planetary scale only for classes
	// whose reference band demands a densely incised network (p10 > 0.5
	// km/km2) that 78 km/px D8 routing cannot resolve; classes with a
	// near-zero p10 (Coastal, FluvialHumid, Cratonic) still score normally.
	drRaw := finiteOr(drainR.DensityKmPerKm2, 0)
	var drScore float64
	if planetary && drainageBand[tc].p10 > 0.5 {
		drScore = scaleNeutralScore
	} else {
		drScore = bandScore(drRaw, drainageBand[tc])
	}

	moScore := bandScore(finiteOr(moransVal, 0), moransBand[tc])

	metrics := []MetricScore{
		{"hurst", hurstR.H, hScore, hScore >= 0.5, "noise_synth"},
		{"roughness_elev", roughR.PearsonR, reScore, reScore >= 0.5, "noise_synth"},
		{"multifractal", multiR.Width, mfScore, mfScore >= 0.5, "noise_synth"},
		{"slope_mode", slopeR.ModeDeg, slScore, slScore >= 0.5, "hydraulic"},
		{"aspect_circ_var", aspectR.CircularVariance, asScore, asScore >= 0.5, "noise_synth"},
		{"tpi_ratio", tpiVal, tpScore, tpScore >= 0.5, "noise_synth"},
		{"hypsometric", hypsR.Integral, hyScore, hyScore >= 0.5, "both"},
		{"geomorphon_l1", geomR.L1Distance, gmScore, gmScore >= 0.5, "hydraulic"},
		{"drainage", drainR.DensityKmPerKm2, drScore, drScore >= 0.5, "hydraulic"},
		{"morans_i", moransVal, moScore, moScore >= 0.5, "hydraulic"},
	}

	weights := []float64{wHurst, wRoughness, wMultifrac, wSlope, wAspect, wTPI, wHyps, wGeomorphon, wDrainage, wMorans}
	var total float64
	for i, m := range metrics {
		total += m.Score01 * weights[i]
	}
	total *= 100

	return RealismScore{Total: total, Metrics: metrics}
}
