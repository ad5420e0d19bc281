package metrics

import (
	"math"
	"testing"

	"github.com/spectrum-art/terra-incognita/grid"
)

func makeTestField(n int, fill float64) *grid.HeightField {
	deg := float64(n) * 0.0009
	hf, _ := grid.NewHeightField(n, n, 0, deg, 0, deg)
	if fill != 0 {
		for i := range hf.Z {
			hf.Z[i] = fill
		}
	}
	return hf
}

func TestHurstFlatFieldReturnsNaN(t *testing.T) {
	hf := makeTestField(64, 500.0)
	r := ComputeHurst(hf)
	if !math.IsNaN(r.H) {
		t.Fatalf("expected NaN for flat field, got %v", r.H)
	}
}

func TestHurstRoughFieldFinite(t *testing.T) {
	n := 64
	hf := makeTestField(n, 0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			hf.Set(r, c, math.Sin(float64(r)*0.3)*50+math.Sin(float64(c)*0.7)*30)
		}
	}
	res := ComputeHurst(hf)
	if math.IsNaN(res.H) {
		t.Fatal("expected finite H for a rough field")
	}
	if res.RSquared < 0 || res.RSquared > 1.0001 {
		t.Fatalf("R^2 out of range: %v", res.RSquared)
	}
}

func TestOLSFitPerfectLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	slope, intercept, r2 := olsFit(x, y)
	if math.Abs(slope-2) > 1e-9 {
		t.Fatalf("expected slope 2, got %v", slope)
	}
	if math.Abs(intercept) > 1e-9 {
		t.Fatalf("expected intercept 0, got %v", intercept)
	}
	if math.Abs(r2-1) > 1e-9 {
		t.Fatalf("expected r2 1, got %v", r2)
	}
}
