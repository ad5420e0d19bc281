package climate

import (
	"testing"

	"github.com/spectrum-art/terra-incognita/grid"
)

func flatRegime(n int) []grid.TectonicRegime {
	r := make([]grid.TectonicRegime, n)
	for i := range r {
		r[i] = grid.CratonicShield
	}
	return r
}

func mountainRegimeAtCol(width, height, col int) []grid.TectonicRegime {
	r := flatRegime(width * height)
	for row := 0; row < height; row++ {
		r[row*width+col] = grid.ActiveCompressional
	}
	return r
}

func TestEquatorialMAPAbove1500mm(t *testing.T) {
	w, h := 64, 64
	cfg := NewConfig(42)
	cfg.ClimateDiversity = 0
	layer, err := Simulate(cfg, flatRegime(w*h), w, h)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	hf, _ := grid.NewHeightField(w, h, -90, 90, -180, 180)
	for r := 0; r < h; r++ {
		lat, _ := hf.CellLatLon(r, 0)
		if lat < -10 || lat > 10 {
			continue
		}
		for c := 0; c < w; c++ {
			mm := layer.MAPField[r*w+c]
			if mm <= 1500 {
				t.Fatalf("row %d lat %.1f: MAP=%.0f mm, expected > 1500", r, lat, mm)
			}
		}
	}
}

func TestSubtropicalDrierThanEquatorial(t *testing.T) {
	eq := mapBaseMM(5, 0.55)
	sub := mapBaseMM(28, 0.55)
	if sub >= eq {
		t.Fatalf("subtropical %.1f should be < equatorial %.1f", sub, eq)
	}
}

func TestMAPSymmetricAboutEquator(t *testing.T) {
	for _, lat := range []float64{10, 30, 50, 70} {
		n := mapBaseMM(lat, 0.55)
		s := mapBaseMM(-lat, 0.55)
		if diff := n - s; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("lat +-%.0f: N=%.4f S=%.4f should match", lat, n, s)
		}
	}
}

func TestOrographicLeewardBelowWindwardNarrowBelt(t *testing.T) {
	w, h := 64, 64
	regime := mountainRegimeAtCol(w, h, 32)
	cfg := NewConfig(42)
	cfg.ClimateDiversity = 0
	layer, err := Simulate(cfg, regime, w, h)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	r := 16
	windward := layer.MAPField[r*w+28]
	leeward := layer.MAPField[r*w+36]
	if leeward >= windward*0.6 {
		t.Fatalf("leeward %.1f should be < 60%% of windward %.1f", leeward, windward)
	}
}

func TestMountainCellsUnmodifiedByOrographicCorrection(t *testing.T) {
	w, h := 32, 16
	regime := mountainRegimeAtCol(w, h, 8)
	field := make([]float64, w*h)
	for i := range field {
		field[i] = 1000
	}
	applyOrographicCorrection(field, regime, w, h)
	for r := 0; r < h; r++ {
		v := field[r*w+8]
		if v != 1000 {
			t.Fatalf("mountain cell row %d was modified: %v", r, v)
		}
	}
}

func TestHighMAPCapsSeasonality(t *testing.T) {
	w, h := 64, 64
	field := make([]float64, w*h)
	for i := range field {
		field[i] = 3000
	}
	s := generateSeasonality(field, w, h)
	for i, v := range s {
		if v > 0.8 {
			t.Fatalf("cell %d: seasonality=%.3f with MAP=3000, expected <= 0.8", i, v)
		}
	}
}

func TestEquatorialLessSeasonalThanPolar(t *testing.T) {
	w, h := 64, 64
	field := make([]float64, w*h)
	for i := range field {
		field[i] = 800
	}
	s := generateSeasonality(field, w, h)
	polar := s[0]
	equatorial := s[(h/2)*w]
	if polar <= equatorial {
		t.Fatalf("polar %.3f should exceed equatorial %.3f", polar, equatorial)
	}
}

func TestActiveGlaciationAbove60DegreesForLowSlider(t *testing.T) {
	w, h := 128, 64
	mask := computeGlaciationMask(0.1, w, h)
	hf, _ := grid.NewHeightField(w, h, -90, 90, -180, 180)
	for r := 0; r < h; r++ {
		lat, _ := hf.CellLatLon(r, 0)
		if lat < 0 {
			lat = -lat
		}
		for c := 0; c < w; c++ {
			if mask[r*w+c] == grid.GlacialActive && lat <= 60 {
				t.Fatalf("active cell row %d lat %.1f is below 60 deg", r, lat)
			}
		}
	}
}

func TestGlaciationSliderZeroGivesNone(t *testing.T) {
	mask := computeGlaciationMask(0, 64, 32)
	for i, c := range mask {
		if c != grid.GlacialNone {
			t.Fatalf("cell %d: expected GlacialNone at slider=0, got %v", i, c)
		}
	}
}

// glaciation=0.05 raises the active threshold all the way to 87 degrees
// (90 - 0.05*60); no cell between -80 and 80 degrees latitude may be Active.
func TestLowGlaciationSliderLeavesMidLatitudesClear(t *testing.T) {
	w, h := 128, 64
	mask := computeGlaciationMask(0.05, w, h)
	hf, _ := grid.NewHeightField(w, h, -90, 90, -180, 180)
	for r := 0; r < h; r++ {
		lat, _ := hf.CellLatLon(r, 0)
		if lat < -80 || lat > 80 {
			continue
		}
		for c := 0; c < w; c++ {
			if mask[r*w+c] == grid.GlacialActive {
				t.Fatalf("active cell row %d lat %.1f within [-80,80]", r, lat)
			}
		}
	}
}

func TestSimulateRejectsTooSmallGrid(t *testing.T) {
	if _, err := Simulate(NewConfig(1), flatRegime(4), 2, 2); err == nil {
		t.Fatal("expected error for undersized grid")
	}
}
