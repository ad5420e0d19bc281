// Package rng provides the deterministic seeding discipline and fBm/noise
// evaluator shared by every stage (SPEC_FULL.md §9 "PRNG discipline").
//
// A single master seed is mixed with a fixed per-stage magic constant via
// XOR to produce an independent sub-seed per stage, so re-ordering or
// skipping stages in tests never perturbs another stage's stream.
package rng

// Stage magic constants, transcribed from SPEC_FULL.md §9 / the reference
// implementation's seeding discipline.
const (
	SeedRidges        uint64 = 0x5A3C9F126B7E4D01
	SeedSubduction     uint64 = 0xCAFEBABEDEADBEEF
	SeedHotspots       uint64 = 0x123456789ABCDEF0
	SeedSmoothFBm      uint64 = 0xF001
	SeedHField         uint64 = 0xA100
	SeedDomainWarp     uint64 = 0xBEEF
	SeedDetailFBm      uint64 = 0x0042
	SeedClimateMapNoise uint64 = 0xC11A1E00
	SeedErodibility    uint64 = 0xE4061B11E7
)

// SubSeed mixes a master seed with a stage's magic constant.
func SubSeed(master uint64, stageConstant uint64) int64 {
	return int64(master ^ stageConstant)
}
