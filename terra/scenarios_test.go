package terra

import (
	"context"
	"testing"

	"github.com/spectrum-art/terra-incognita/grid"
)

// Default sliders (seed=42) classify as FluvialHumid; a full-pipeline run at
// the canonical resolution must clear the realism threshold a passing
// terrain is expected to meet.
func TestDefaultSlidersScoreAtLeast75(t *testing.T) {
	p := NewGlobalParams(42)
	res, err := Generate(context.Background(), p, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.TerrainClass != grid.FluvialHumid {
		t.Fatalf("expected FluvialHumid for default sliders, got %v", res.TerrainClass)
	}
	if res.Score.Total < 75 {
		t.Fatalf("expected realism score >= 75, got %.1f", res.Score.Total)
	}
}
