package grid

import (
	"math"
	"sync"
	"testing"
)

func TestNewHeightFieldRejectsTooSmall(t *testing.T) {
	if _, err := NewHeightField(2, 10, -90, 90, -180, 180); err == nil {
		t.Fatal("expected error for width < 3")
	}
	if _, err := NewHeightField(10, 2, -90, 90, -180, 180); err == nil {
		t.Fatal("expected error for height < 3")
	}
}

func TestCellLatLonNeverHitsPole(t *testing.T) {
	h, err := NewGlobalHeightField(16, 8)
	if err != nil {
		t.Fatal(err)
	}
	lat, _ := h.CellLatLon(0, 0)
	if lat >= 90 {
		t.Fatalf("row 0 lat = %v, want strictly < 90", lat)
	}
	lat, _ = h.CellLatLon(h.Height-1, 0)
	if lat <= -90 {
		t.Fatalf("last row lat = %v, want strictly > -90", lat)
	}
}

func TestCellToVec3RoundTrip(t *testing.T) {
	h, err := NewGlobalHeightField(32, 16)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < h.Height; r += 3 {
		for c := 0; c < h.Width; c += 5 {
			latIn, lonIn := h.CellLatLon(r, c)
			v := LatLonToVec3(latIn, lonIn)
			latOut, lonOut := Vec3ToLatLon(v)
			if math.Abs(latIn-latOut) > 1e-9 {
				t.Fatalf("lat round trip: in=%v out=%v", latIn, latOut)
			}
			if math.Abs(lonIn-lonOut) > 1e-9 {
				t.Fatalf("lon round trip: in=%v out=%v", lonIn, lonOut)
			}
		}
	}
}

func TestGreatCircleDistanceAntipodal(t *testing.T) {
	a := LatLonToVec3(0, 0)
	b := LatLonToVec3(0, 180)
	d := GreatCircleDistance(a, b)
	if math.Abs(d-math.Pi) > 1e-9 {
		t.Fatalf("antipodal distance = %v, want pi", d)
	}
}

func TestGreatCircleDistanceSamePoint(t *testing.T) {
	a := LatLonToVec3(37, -122)
	if d := GreatCircleDistance(a, a); math.Abs(d) > 1e-9 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestHornGradientFlatFieldIsZero(t *testing.T) {
	h, err := NewGlobalHeightField(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range h.Z {
		h.Z[i] = 100
	}
	dzdx, dzdy := h.HornGradient(4, 4, h.CellSizeM())
	if dzdx != 0 || dzdy != 0 {
		t.Fatalf("flat field gradient = (%v, %v), want (0, 0)", dzdx, dzdy)
	}
}

func TestHornGradientEastwardRamp(t *testing.T) {
	h, err := NewGlobalHeightField(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < h.Height; r++ {
		for c := 0; c < h.Width; c++ {
			h.Set(r, c, float64(c)*10)
		}
	}
	dzdx, dzdy := h.HornGradient(8, 8, 1.0)
	if dzdx <= 0 {
		t.Fatalf("eastward ramp dzdx = %v, want > 0", dzdx)
	}
	if math.Abs(dzdy) > 1e-9 {
		t.Fatalf("eastward ramp dzdy = %v, want 0", dzdy)
	}
}

func TestParallelCoversAllItems(t *testing.T) {
	const n = 1000
	seen := make([]int32, n)
	var mu sync.Mutex
	Parallel(n, func(start, end int) {
		mu.Lock()
		for i := start; i < end; i++ {
			seen[i]++
		}
		mu.Unlock()
	})
	for i, v := range seen {
		if v != 1 {
			t.Fatalf("item %d visited %d times, want 1", i, v)
		}
	}
}

func TestParallelEmptyRange(t *testing.T) {
	called := false
	Parallel(0, func(start, end int) { called = true })
	if called {
		t.Fatal("fn should not be called for totalItems=0")
	}
}
