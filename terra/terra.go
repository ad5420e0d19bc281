// Package terra is the root orchestrator (C8): it resolves a GlobalParams
// slider vector into each stage's concrete parameters and runs the plate,
// climate, noise synthesis, hydraulic shaping and metrics stages in strict
// sequence, grounded on the teacher's Map/NewMapFromConfig/generateMap()
// shape (genworldvoronoi.go) and Config{}-embedding-sub-configs pattern
// (config.go), re-purposed from *Geo/*Civ/*Bio to the plates/climate/synth/
// hydro/metrics pipeline this spec actually runs.
package terra

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spectrum-art/terra-incognita/climate"
	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/hydro"
	"github.com/spectrum-art/terra-incognita/metrics"
	"github.com/spectrum-art/terra-incognita/plates"
	"github.com/spectrum-art/terra-incognita/synth"
)

// GridWidth and GridHeight are the canonical equirectangular generation
// resolution (SPEC_FULL.md §6); smaller tiles are valid for unit tests but
// this is what Generate uses by default.
const (
	GridWidth  = 512
	GridHeight = 256
)

// PlanetResult is the full output of one generation run (SPEC_FULL.md §3's
// expanded PlanetResult): the shaped heightfield plus every upstream field
// the preview server needs to label it without recomputing derived params.
type PlanetResult struct {
	Width, Height int

	Heights     []float64 // metres, row-major
	Regimes     []grid.TectonicRegime
	MAPField    []float64 // mm/yr, row-major
	GlacialMask []grid.GlacialClass

	TerrainClass grid.TerrainClass
	CellSizeM    float64

	Score metrics.RealismScore

	GenerationTimeMS int64
}

// Generate runs the full pipeline for p at the canonical GridWidth x
// GridHeight resolution: plates -> climate -> noise synthesis -> hydraulic
// shaping -> metrics, in the fixed order SPEC_FULL.md §2/§4.6 requires.
//
// ctx is checked only at stage boundaries, never mid-stage, per SPEC_FULL.md
// §5 -- it exists purely so a caller like the preview server can bound one
// HTTP request's worth of generation with a timeout. A nil logger defaults
// to log.Default(), matching the teacher's own log.Println/log.Fatal usage
// throughout cmd/server/main.go.
func Generate(ctx context.Context, p GlobalParams, logger *log.Logger) (*PlanetResult, error) {
	return generate(ctx, p, GridWidth, GridHeight, logger)
}

// GenerateTile is Generate's width/height-parameterised sibling, used by
// tests and by any caller that wants a smaller-than-canonical tile (256x256
// and 512x512 are both named as valid test sizes in SPEC_FULL.md §6).
func GenerateTile(ctx context.Context, p GlobalParams, width, height int, logger *log.Logger) (*PlanetResult, error) {
	return generate(ctx, p, width, height, logger)
}

func generate(ctx context.Context, p GlobalParams, width, height int, logger *log.Logger) (*PlanetResult, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := validateParams(p); err != nil {
		return nil, wrapErr(InvalidParam, "Generate", err)
	}

	totalStart := time.Now()
	dbg := ResolveDebugParams(p)

	// 1. Plate simulation.
	stageStart := time.Now()
	plateCfg := plates.NewConfig(uint64(p.Seed), p.ContinentalFragmentation)
	sim, err := plates.Simulate(plateCfg, width, height)
	if err != nil {
		return nil, wrapErr(InvalidGrid, "plates.Simulate", err)
	}
	logger.Printf("terra: stage plates done in %v", time.Since(stageStart))
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	// 2. Climate field.
	stageStart = time.Now()
	climateCfg := climate.NewConfig(uint64(p.Seed) ^ 0x5A5A)
	climateCfg.WaterAbundance = p.WaterAbundance
	climateCfg.ClimateDiversity = p.ClimateDiversity
	climateCfg.Glaciation = p.Glaciation
	climateLayer, err := climate.Simulate(climateCfg, sim.RegimeField, width, height)
	if err != nil {
		return nil, wrapErr(InvalidGrid, "climate.Simulate", err)
	}
	logger.Printf("terra: stage climate done in %v", time.Since(stageStart))
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	// 3. Noise synthesis.
	stageStart = time.Now()
	synthCfg := synth.NewConfig(uint64(p.Seed), dbg.TerrainClass)
	synthCfg.HBase = dbg.HBase
	synthCfg.HVariance = dbg.HVariance
	synthCfg.GrainAngle = meanGrainAngle(sim.Grain)
	synthCfg.GrainIntensity = clampUnit(meanGrainIntensity(sim.Grain) * dbg.GrainIntensityScale)
	synthCfg.MountainHeightScale = dbg.MountainHeightScale
	synthCfg.UpliftScale = dbg.UpliftScale
	hf, err := synth.Generate(synthCfg, width, height)
	if err != nil {
		return nil, wrapErr(InvalidGrid, "synth.Generate", err)
	}
	logger.Printf("terra: stage noise synthesis done in %v", time.Since(stageStart))
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	// 4. Hydraulic shaping, mutating hf in place.
	stageStart = time.Now()
	hydroCfg := hydro.NewConfig(dbg.TerrainClass)
	hydroCfg.WaterAbundanceScale = dbg.ErosionScale
	hydroResult, err := hydro.Shape(hydroCfg, hf, sim.ErodibilityField, climateLayer.GlaciationMask)
	if err != nil {
		return nil, wrapErr(InvalidGrid, "hydro.Shape", err)
	}
	logger.Printf("terra: stage hydraulic shaping done in %v", time.Since(stageStart))
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	if !hf.AllFinite() {
		return nil, wrapErr(NumericFailure, "Generate", fmt.Errorf("heightfield contains non-finite cells after hydraulic shaping"))
	}

	// 5. Realism scoring.
	stageStart = time.Now()
	score := metrics.ComputeRealismScore(hf, dbg.TerrainClass, hydroResult.Basins)
	logger.Printf("terra: stage metrics done in %v", time.Since(stageStart))

	return &PlanetResult{
		Width:  width,
		Height: height,

		Heights:     hf.Z,
		Regimes:     sim.RegimeField,
		MAPField:    climateLayer.MAPField,
		GlacialMask: climateLayer.GlaciationMask,

		TerrainClass: dbg.TerrainClass,
		CellSizeM:    hf.CellSizeM(),

		Score: score,

		GenerationTimeMS: time.Since(totalStart).Milliseconds(),
	}, nil
}

// checkCtx reports ctx's own cancellation error unwrapped (context.Canceled
// or context.DeadlineExceeded), rather than folding it into a terra.Kind --
// cancellation is not one of the four kinds SPEC_FULL.md §7 names, and
// callers already check for it the idiomatic way via errors.Is against the
// stdlib sentinels.
func checkCtx(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// meanGrainAngle and meanGrainIntensity take the plain arithmetic mean of
// the plate simulation's per-cell grain field, matching
// original_source/.../generator.rs's derive_noise_params exactly (a simple
// mean, not a circular mean, despite angle being a directional quantity --
// this is the reference behaviour, not an oversight, so it is reproduced
// rather than corrected).
func meanGrainAngle(g plates.GrainField) float64 {
	if len(g.AngleRad) == 0 {
		return 0
	}
	var sum float64
	for _, v := range g.AngleRad {
		sum += v
	}
	return sum / float64(len(g.AngleRad))
}

func meanGrainIntensity(g plates.GrainField) float64 {
	if len(g.Intensity) == 0 {
		return 0
	}
	var sum float64
	for _, v := range g.Intensity {
		sum += v
	}
	return clampUnit(sum / float64(len(g.Intensity)))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
