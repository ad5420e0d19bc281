package metrics

import (
	"math"
	"testing"
)

// Ported from original_source/.../metrics/tpi.rs's tpi_two_scale_field_is_scale_dependent.
func TestTPITwoScaleFieldIsScaleDependent(t *testing.T) {
	n := 128
	hf := makeTestField(n, 0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := math.Sin(2*math.Pi*float64(c)/4.0)*50 + math.Sin(2*math.Pi*float64(c)/40.0)*200
			hf.Set(r, c, v)
		}
	}
	res := ComputeTPI(hf)
	if math.IsNaN(res.StdR1) || math.IsNaN(res.StdR2) || math.IsNaN(res.StdR3) {
		t.Fatal("std at all three radii should be finite for a 128x128 field")
	}
	if !res.IsScaleDependent {
		t.Fatalf("two-scale field expected scale-dependent, ratios = %v / %v", res.RatioR1R2, res.RatioR2R3)
	}
}

func TestTPISmallFieldReturnsNaN(t *testing.T) {
	hf := makeTestField(30, 0)
	res := ComputeTPI(hf)
	if !math.IsNaN(res.StdR3) {
		t.Fatalf("StdR3 should be NaN for a 30x30 field (min dim < 41), got %v", res.StdR3)
	}
}
