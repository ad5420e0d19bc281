package synth

import (
	"testing"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/metrics"
)

func TestGenerateProducesNonZeroElevationRange(t *testing.T) {
	cfg := NewConfig(42, grid.Alpine)
	cfg.HBase = 0.75
	cfg.HVariance = 0.12
	cfg.GrainIntensity = 0.4
	hf, err := Generate(cfg, 128, 128)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if hf.Max()-hf.Min() < 100.0 {
		t.Fatalf("elevation range %.1f too small for Alpine", hf.Max()-hf.Min())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := NewConfig(7, grid.FluvialHumid)
	a, err := Generate(cfg, 64, 64)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(cfg, 64, 64)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range a.Z {
		if a.Z[i] != b.Z[i] {
			t.Fatalf("cell %d differs: %v != %v", i, a.Z[i], b.Z[i])
		}
	}
}

func TestGenerateAllFinite(t *testing.T) {
	cfg := NewConfig(99, grid.Cratonic)
	hf, err := Generate(cfg, 48, 32)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !hf.AllFinite() {
		t.Fatal("generated field contains non-finite values")
	}
}

func TestHypsometricShapingWithinRange(t *testing.T) {
	n := 64 * 64
	z := make([]float64, n)
	for i := range z {
		z[i] = float64(i)
	}
	origMin, origMax := z[0], z[len(z)-1]
	applyHypsometricShaping(z, 0.4)
	min, max := z[0], z[0]
	for _, v := range z {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min < origMin-1 || max > origMax+1 {
		t.Fatalf("shaped range [%v,%v] escaped original [%v,%v]", min, max, origMin, origMax)
	}
}

func TestHypsometricShapingFlatFieldUnchanged(t *testing.T) {
	z := make([]float64, 32*32)
	applyHypsometricShaping(z, 0.4)
	for _, v := range z {
		if v != 0 {
			t.Fatalf("flat field should stay flat, got %v", v)
		}
	}
}

func TestAnisotropyZeroIntensityPreservesLength(t *testing.T) {
	x, y := 1.0, 0.0
	xo, yo := applyAnisotropy(x, y, 3.14159/4, 0)
	lenIn := x*x + y*y
	lenOut := xo*xo + yo*yo
	if d := lenIn - lenOut; d > 1e-9 || d < -1e-9 {
		t.Fatalf("zero-intensity anisotropy should preserve length: in=%v out=%v", lenIn, lenOut)
	}
}

func TestAnisotropyHighIntensityStretchesCrossGrain(t *testing.T) {
	_, yo := applyAnisotropy(0, 1, 0, 0.8)
	expected := 1.0 / (1.0 - 0.9*0.8)
	if d := yo - expected; d > 1e-9 || d < -1e-9 {
		t.Fatalf("expected cross-grain scale %v, got %v", expected, yo)
	}
}

func TestWarpZeroScaleIsIdentity(t *testing.T) {
	w := newWarper(42)
	xo, yo := w.warp(1.23, 4.56, 0, 0)
	if d := xo - 1.23; d > 1e-9 || d < -1e-9 {
		t.Fatalf("zero-scale warp should be identity in x, got %v", xo)
	}
	if d := yo - 4.56; d > 1e-9 || d < -1e-9 {
		t.Fatalf("zero-scale warp should be identity in y, got %v", yo)
	}
}

func TestHFieldWithinRange(t *testing.T) {
	cfg := NewConfig(99, grid.Alpine)
	cfg.HBase = 0.75
	cfg.HVariance = 0.15
	field := generateHField(cfg, 64, 64)
	lo := cfg.HBase - cfg.HVariance
	if lo < 0.3 {
		lo = 0.3
	}
	hi := cfg.HBase + cfg.HVariance
	if hi > 0.95 {
		hi = 0.95
	}
	for i, v := range field {
		if v < lo || v > hi {
			t.Fatalf("H-field cell %d = %v outside [%v,%v]", i, v, lo, hi)
		}
	}
}

func TestGenerateRejectsTooSmallGrid(t *testing.T) {
	cfg := NewConfig(1, grid.Alpine)
	if _, err := Generate(cfg, 2, 2); err == nil {
		t.Fatal("expected error for undersized grid")
	}
}

// Noise-only path: no plate/climate/hydraulic stage runs, just Generate
// fed an explicit h_base, matching the named-scenario calibration check at
// h_base=0.75 on a 256x256 tile.
func TestNoiseOnlyHBase075MatchesHurstMultifractalRoughnessBands(t *testing.T) {
	cfg := NewConfig(42, grid.FluvialHumid)
	cfg.HBase = 0.75
	cfg.HVariance = 0.08
	hf, err := Generate(cfg, 256, 256)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	hr := metrics.ComputeHurst(hf)
	if hr.H < 0.72 || hr.H > 0.80 {
		t.Fatalf("measured Hurst %.3f outside [0.72, 0.80]", hr.H)
	}

	mr := metrics.ComputeMultifractal(hf)
	if mr.Width <= 0.35 {
		t.Fatalf("multifractal width %.3f should exceed 0.35", mr.Width)
	}

	rr := metrics.ComputeRoughnessElev(hf)
	if rr.PearsonR <= 0.40 {
		t.Fatalf("roughness-elevation r %.3f should exceed 0.40", rr.PearsonR)
	}
}

// Hypsometric remap accuracy: applyHypsometricShaping's rank->p^gamma
// transform is calibrated so the resulting integral converges on its target
// as n grows; every terrain class's target must land within the named
// 0.005 tolerance.
func TestHypsometricRemapMatchesTargetPerClass(t *testing.T) {
	classes := []grid.TerrainClass{grid.Alpine, grid.FluvialHumid, grid.FluvialArid, grid.Cratonic, grid.Coastal}
	for _, class := range classes {
		cfg := NewConfig(42, class)
		hf, err := Generate(cfg, 96, 96)
		if err != nil {
			t.Fatalf("Generate(%v): %v", class, err)
		}
		got := metrics.ComputeHypsometric(hf).Integral
		want := targetHI(class)
		if d := got - want; d > 0.005 || d < -0.005 {
			t.Fatalf("%v: hypsometric integral %.4f differs from target %.4f by more than 0.005", class, got, want)
		}
	}
}

// Anisotropy invariant: a high grain_intensity world must not have a larger
// aspect circular variance than its isotropic (grain_intensity=0) sibling,
// all else held equal. Only monotonicity is asserted, per the note that the
// absolute band is unreliable under the single-angle circular-variance
// formula.
func TestHighGrainIntensityDoesNotIncreaseAspectCircularVariance(t *testing.T) {
	base := NewConfig(7, grid.Alpine)
	base.HBase = 0.75
	base.HVariance = 0.1

	isoCfg := base
	isoCfg.GrainIntensity = 0.0
	hfIso, err := Generate(isoCfg, 128, 128)
	if err != nil {
		t.Fatalf("Generate (isotropic): %v", err)
	}

	anisoCfg := base
	anisoCfg.GrainIntensity = 0.8
	hfAniso, err := Generate(anisoCfg, 128, 128)
	if err != nil {
		t.Fatalf("Generate (anisotropic): %v", err)
	}

	cvIso := metrics.ComputeAspect(hfIso).CircularVariance
	cvAniso := metrics.ComputeAspect(hfAniso).CircularVariance
	if cvAniso > cvIso {
		t.Fatalf("grain_intensity=0.8 aspect CV %.4f exceeds grain_intensity=0 CV %.4f", cvAniso, cvIso)
	}
}
