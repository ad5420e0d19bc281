package metrics

import (
	"math"
	"testing"
)

func TestMultifractalFlatFieldInvalid(t *testing.T) {
	hf := makeTestField(64, 300.0)
	r := ComputeMultifractal(hf)
	if r.Valid {
		t.Fatal("expected Valid=false for a flat field (all pairs near-zero)")
	}
}

func TestMultifractalRoughFieldValid(t *testing.T) {
	n := 64
	hf := makeTestField(n, 0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			hf.Set(r, c, math.Sin(float64(r)*0.5)*80+math.Cos(float64(c)*0.9)*60+float64((r*n+c)%13)*5)
		}
	}
	res := ComputeMultifractal(hf)
	if !res.Valid {
		t.Fatal("expected Valid=true for a textured field")
	}
	width := res.HOfQ[0] - res.HOfQ[4]
	if math.Abs(width-res.Width) > 1e-9 {
		t.Fatalf("Width should equal H(-2)-H(2): got %v vs %v", res.Width, width)
	}
}
