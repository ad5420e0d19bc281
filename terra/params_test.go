package terra

import (
	"testing"

	"github.com/spectrum-art/terra-incognita/grid"
)

func TestClassifyTerrainAlpine(t *testing.T) {
	p := NewGlobalParams(1)
	p.MountainPrevalence = 0.85
	if got := classifyTerrain(p); got != grid.Alpine {
		t.Fatalf("expected Alpine, got %v", got)
	}
}

func TestClassifyTerrainCratonic(t *testing.T) {
	p := NewGlobalParams(1)
	p.MountainPrevalence = 0.1
	p.TectonicActivity = 0.1
	if got := classifyTerrain(p); got != grid.Cratonic {
		t.Fatalf("expected Cratonic, got %v", got)
	}
}

func TestClassifyTerrainFluvialArid(t *testing.T) {
	p := NewGlobalParams(1)
	p.MountainPrevalence = 0.5
	p.WaterAbundance = 0.1
	if got := classifyTerrain(p); got != grid.FluvialArid {
		t.Fatalf("expected FluvialArid, got %v", got)
	}
}

func TestClassifyTerrainCoastal(t *testing.T) {
	p := NewGlobalParams(1)
	p.MountainPrevalence = 0.1
	p.TectonicActivity = 0.9
	p.WaterAbundance = 0.9
	if got := classifyTerrain(p); got != grid.Coastal {
		t.Fatalf("expected Coastal, got %v", got)
	}
}

func TestClassifyTerrainFluvialHumidDefault(t *testing.T) {
	p := NewGlobalParams(1)
	if got := classifyTerrain(p); got != grid.FluvialHumid {
		t.Fatalf("expected FluvialHumid for default sliders, got %v", got)
	}
}

func TestClassifyGlacialThresholds(t *testing.T) {
	cases := []struct {
		g    float64
		want grid.GlacialClass
	}{
		{0.0, grid.GlacialNone},
		{0.3, grid.GlacialFormer},
		{0.7, grid.GlacialActive},
	}
	for _, c := range cases {
		if got := classifyGlacial(c.g); got != c.want {
			t.Fatalf("classifyGlacial(%v) = %v, want %v", c.g, got, c.want)
		}
	}
}

func TestResolveDebugParamsIsPure(t *testing.T) {
	p := NewGlobalParams(42)
	a := ResolveDebugParams(p)
	b := ResolveDebugParams(p)
	if a != b {
		t.Fatalf("ResolveDebugParams is not pure: %+v != %+v", a, b)
	}
}

func TestResolveDebugParamsHBaseDecreasesWithSurfaceAge(t *testing.T) {
	p := NewGlobalParams(42)
	p.SurfaceAge = 0.0
	young := ResolveDebugParams(p)
	p.SurfaceAge = 1.0
	old := ResolveDebugParams(p)
	if old.HBase >= young.HBase {
		t.Fatalf("expected h_base to decrease with surface_age: young=%v old=%v", young.HBase, old.HBase)
	}
}

func TestValidateParamsRejectsOutOfRangeSlider(t *testing.T) {
	p := NewGlobalParams(1)
	p.WaterAbundance = 1.5
	if err := validateParams(p); err == nil {
		t.Fatal("expected error for out-of-range slider")
	}
}

func TestValidateParamsAcceptsDefaults(t *testing.T) {
	if err := validateParams(NewGlobalParams(1)); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}
