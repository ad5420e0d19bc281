package terra

import (
	"encoding/binary"
	"io"

	"github.com/spectrum-art/terra-incognita/grid"
	"github.com/spectrum-art/terra-incognita/various"
)

// WriteBinary dumps r's dense fields (heights, regime ordinals, MAP field,
// glacial mask) to w in a fixed little-endian layout, adapting the
// teacher's various/io.go slice codec (WriteFloatSlice/WriteIntSlice) --
// originally written for the Voronoi mesh's per-region int/float maps --
// to this package's row-major grid slices instead. This is a debug/test
// fixture dump for snapshotting a PlanetResult between test runs, not the
// excluded offline export-encoder subsystem (16-bit PNG, float binary)
// SPEC_FULL.md §1 names as out of scope.
func WriteBinary(w io.Writer, r *PlanetResult) error {
	if err := binary.Write(w, binary.LittleEndian, int64(r.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int64(r.Height)); err != nil {
		return err
	}
	if err := various.WriteFloatSlice(w, r.Heights); err != nil {
		return err
	}
	if err := various.WriteFloatSlice(w, r.MAPField); err != nil {
		return err
	}

	regimeOrdinals := make([]int, len(r.Regimes))
	for i, reg := range r.Regimes {
		regimeOrdinals[i] = int(reg)
	}
	if err := various.WriteIntSlice(w, regimeOrdinals); err != nil {
		return err
	}

	glacialOrdinals := make([]int, len(r.GlacialMask))
	for i, g := range r.GlacialMask {
		glacialOrdinals[i] = int(g)
	}
	return various.WriteIntSlice(w, glacialOrdinals)
}

// ReadBinary reverses WriteBinary, reconstructing the dense fields it wrote.
// The returned PlanetResult carries no TerrainClass/Score: those are
// recomputed by the caller (e.g. via metrics.ComputeRealismScore) if needed,
// since they are cheap to derive and this snapshot format is for the raw
// fields only.
func ReadBinary(r io.Reader) (*PlanetResult, error) {
	var width, height int64
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, err
	}

	heights, err := various.ReadFloatSlice(r)
	if err != nil {
		return nil, err
	}
	mapField, err := various.ReadFloatSlice(r)
	if err != nil {
		return nil, err
	}
	regimeOrdinals, err := various.ReadIntSlice(r)
	if err != nil {
		return nil, err
	}
	glacialOrdinals, err := various.ReadIntSlice(r)
	if err != nil {
		return nil, err
	}

	regimes := make([]grid.TectonicRegime, len(regimeOrdinals))
	for i, v := range regimeOrdinals {
		regimes[i] = grid.TectonicRegime(v)
	}
	glacialMask := make([]grid.GlacialClass, len(glacialOrdinals))
	for i, v := range glacialOrdinals {
		glacialMask[i] = grid.GlacialClass(v)
	}

	return &PlanetResult{
		Width:       int(width),
		Height:      int(height),
		Heights:     heights,
		MAPField:    mapField,
		Regimes:     regimes,
		GlacialMask: glacialMask,
	}, nil
}
