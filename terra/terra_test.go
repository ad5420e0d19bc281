package terra

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/spectrum-art/terra-incognita/grid"
)

func TestGenerateTileProducesFiniteHeightfield(t *testing.T) {
	p := NewGlobalParams(42)
	res, err := GenerateTile(context.Background(), p, 128, 128, nil)
	if err != nil {
		t.Fatalf("GenerateTile: %v", err)
	}
	if len(res.Heights) != 128*128 {
		t.Fatalf("expected %d heights, got %d", 128*128, len(res.Heights))
	}
	for i, v := range res.Heights {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite height at cell %d: %v", i, v)
		}
	}
}

func TestGenerateIsDeterministicForSameParams(t *testing.T) {
	p := NewGlobalParams(7)
	a, err := GenerateTile(context.Background(), p, 96, 96, nil)
	if err != nil {
		t.Fatalf("GenerateTile: %v", err)
	}
	b, err := GenerateTile(context.Background(), p, 96, 96, nil)
	if err != nil {
		t.Fatalf("GenerateTile: %v", err)
	}
	for i := range a.Heights {
		if a.Heights[i] != b.Heights[i] {
			t.Fatalf("identical params produced different heights at cell %d: %v != %v", i, a.Heights[i], b.Heights[i])
		}
	}
}

func TestGenerateDiffersBySeed(t *testing.T) {
	p1 := NewGlobalParams(1)
	p2 := NewGlobalParams(2)
	a, err := GenerateTile(context.Background(), p1, 96, 96, nil)
	if err != nil {
		t.Fatalf("GenerateTile: %v", err)
	}
	b, err := GenerateTile(context.Background(), p2, 96, 96, nil)
	if err != nil {
		t.Fatalf("GenerateTile: %v", err)
	}
	same := true
	for i := range a.Heights {
		if a.Heights[i] != b.Heights[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced byte-identical heightfields")
	}
}

func TestGenerateRejectsInvalidParam(t *testing.T) {
	p := NewGlobalParams(1)
	p.Glaciation = 2.0
	_, err := GenerateTile(context.Background(), p, 64, 64, nil)
	if !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam, got %v", err)
	}
}

func TestGenerateRejectsTooSmallGrid(t *testing.T) {
	p := NewGlobalParams(1)
	_, err := GenerateTile(context.Background(), p, 2, 2, nil)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestGenerateRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewGlobalParams(1)
	_, err := GenerateTile(ctx, p, 64, 64, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateReportsNoUnclassifiedRegimeCells(t *testing.T) {
	p := NewGlobalParams(42)
	res, err := GenerateTile(context.Background(), p, 96, 96, nil)
	if err != nil {
		t.Fatalf("GenerateTile: %v", err)
	}
	for i, reg := range res.Regimes {
		if reg > grid.VolcanicHotspot {
			t.Fatalf("unclassified regime at cell %d: %v", i, reg)
		}
	}
}

func TestWriteReadBinaryRoundTrip(t *testing.T) {
	p := NewGlobalParams(42)
	res, err := GenerateTile(context.Background(), p, 64, 64, nil)
	if err != nil {
		t.Fatalf("GenerateTile: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteBinary(&buf, res); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	got, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if got.Width != res.Width || got.Height != res.Height {
		t.Fatalf("dimension mismatch after round-trip: got %dx%d, want %dx%d", got.Width, got.Height, res.Width, res.Height)
	}
	for i := range res.Heights {
		if got.Heights[i] != res.Heights[i] {
			t.Fatalf("height mismatch at cell %d after round-trip: %v != %v", i, got.Heights[i], res.Heights[i])
		}
	}
	for i := range res.Regimes {
		if got.Regimes[i] != res.Regimes[i] {
			t.Fatalf("regime mismatch at cell %d after round-trip", i)
		}
	}
}

func TestErrorIsMatchesByKind(t *testing.T) {
	err := wrapErr(InvalidParam, "test", errors.New("boom"))
	if !errors.Is(err, ErrInvalidParam) {
		t.Fatal("expected errors.Is to match by Kind")
	}
	if errors.Is(err, ErrInvalidGrid) {
		t.Fatal("errors.Is should not match a different Kind")
	}
}
