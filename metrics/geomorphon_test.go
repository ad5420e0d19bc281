package metrics

import (
	"testing"

	"github.com/spectrum-art/terra-incognita/grid"
)

func TestGeomorphonsFlatFieldAllFlat(t *testing.T) {
	hf := makeTestField(32, 0)
	res := ClassifyGeomorphons(hf, 3, 1.0, grid.Cratonic)
	for i, cls := range res.Classes {
		if cls != GeomorphonFlat {
			t.Fatalf("cell %d: expected Flat, got %v", i, cls)
		}
	}
	if res.Hist10[GeomorphonFlat] < 0.999 {
		t.Fatalf("hist10[Flat] should be ~1.0, got %v", res.Hist10[GeomorphonFlat])
	}
}

func TestGeomorphonsPeakFieldCenterIsPeak(t *testing.T) {
	n := 32
	hf := makeTestField(n, 0)
	mid := n / 2
	hf.Set(mid, mid, 1000)
	res := ClassifyGeomorphons(hf, 3, 1.0, grid.Alpine)
	if res.Classes[mid*n+mid] != GeomorphonPeak {
		t.Fatalf("center of isolated peak should classify as Peak, got %v", res.Classes[mid*n+mid])
	}
}

func TestGeomorphonsHist10SumsToOne(t *testing.T) {
	n := 64
	hf := makeTestField(n, 0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			hf.Set(r, c, float64(c)*10.0)
		}
	}
	res := ClassifyGeomorphons(hf, 3, 1.0, grid.Alpine)
	var total float64
	for _, v := range res.Hist10 {
		total += v
	}
	if diff := total - 1.0; diff > 1e-4 || diff < -1e-4 {
		t.Fatalf("hist10 must sum to 1.0, got %v", total)
	}
}

func TestGeomorphonsL1DistanceBounded(t *testing.T) {
	n := 64
	hf := makeTestField(n, 0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			hf.Set(r, c, float64(c)*10.0)
		}
	}
	res := ClassifyGeomorphons(hf, 3, 1.0, grid.Alpine)
	if res.L1Distance < 0 || res.L1Distance > 1 {
		t.Fatalf("L1 distance out of [0,1]: %v", res.L1Distance)
	}
}
