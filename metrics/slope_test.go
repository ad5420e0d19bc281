package metrics

import (
	"math"
	"testing"
)

func TestSlopeFlatFieldModeZero(t *testing.T) {
	hf := makeTestField(32, 500.0)
	r := ComputeSlope(hf)
	if r.ModeDeg >= 1.0 {
		t.Fatalf("flat field should have mode in the 0-degree bin, got %v", r.ModeDeg)
	}
	if math.Abs(r.Histogram[0]-1.0) > 1e-6 {
		t.Fatalf("flat field should put all interior cells in bin 0, got %v", r.Histogram[0])
	}
}

func TestSlopeHistogramSumsToOne(t *testing.T) {
	n := 48
	hf := makeTestField(n, 0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			hf.Set(r, c, float64(c)*float64(c)*2.0)
		}
	}
	res := ComputeSlope(hf)
	var sum float64
	for _, v := range res.Histogram {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Fatalf("histogram should sum to 1, got %v", sum)
	}
}

func TestSlopeStdNonNegative(t *testing.T) {
	n := 32
	hf := makeTestField(n, 0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			hf.Set(r, c, math.Sin(float64(r+c))*300)
		}
	}
	res := ComputeSlope(hf)
	if res.StdDeg < 0 {
		t.Fatalf("std must be non-negative, got %v", res.StdDeg)
	}
}
