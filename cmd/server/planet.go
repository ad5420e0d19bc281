package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/spectrum-art/terra-incognita/terra"
	"github.com/spectrum-art/terra-incognita/various"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
)

// parseGlobalParams reads a GlobalParams from the request's query string,
// falling back to terra.NewGlobalParams' Earth defaults for any field the
// caller omits -- mirroring the teacher's flag-driven bootstrap (config
// overridden field-by-field from user input) but over query params instead
// of command-line flags, since this is a per-request HTTP surface.
func parseGlobalParams(req *http.Request) terra.GlobalParams {
	q := req.URL.Query()
	seed := defaultSeed
	if v, err := strconv.ParseInt(q.Get("seed"), 10, 64); err == nil {
		seed = v
	}
	p := terra.NewGlobalParams(uint32(seed))

	setFloat := func(name string, dst *float64) {
		if v, err := strconv.ParseFloat(q.Get(name), 64); err == nil {
			*dst = v
		}
	}
	setFloat("tectonic_activity", &p.TectonicActivity)
	setFloat("water_abundance", &p.WaterAbundance)
	setFloat("surface_age", &p.SurfaceAge)
	setFloat("climate_diversity", &p.ClimateDiversity)
	setFloat("glaciation", &p.Glaciation)
	setFloat("continental_fragmentation", &p.ContinentalFragmentation)
	setFloat("mountain_prevalence", &p.MountainPrevalence)
	return p
}

func generateFromRequest(req *http.Request) (*terra.PlanetResult, error) {
	p := parseGlobalParams(req)
	ctx, cancel := context.WithTimeout(req.Context(), genTimeout)
	defer cancel()
	return terra.Generate(ctx, p, log.Default())
}

// elevationGradient builds a blue-to-red elevation ramp, the same five-stop
// shape as the teacher's tiles.go displayMode-19 color gradient, via
// colorgrad.NewGradient().Colors(...).Build().
func elevationGradient() (colorgrad.Gradient, error) {
	g := colorgrad.NewGradient()
	g.Colors(
		color.RGBA{0, 0, 255, 255},
		color.RGBA{0, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 255, 0, 255},
		color.RGBA{255, 0, 0, 255},
	)
	return g.Build()
}

func planetPNGHandler(res http.ResponseWriter, req *http.Request) {
	r, err := generateFromRequest(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	srv.set(r)

	cb, err := elevationGradient()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	min, max := r.Heights[0], r.Heights[0]
	for _, h := range r.Heights {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	span := max - min
	if span < 1e-6 {
		span = 1
	}

	dest := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			val := (r.Heights[row*r.Width+col] - min) / span
			dest.Set(col, row, cb.At(val))
		}
	}

	// Overlay tectonic-regime boundaries, grounded on the teacher's region
	// outline drawing in GetTile (draw2dimg path-per-region) -- here one
	// short stroke per cell-to-neighbour regime change instead of one path
	// per Voronoi region.
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetStrokeColor(color.NRGBA{0, 0, 0, 160})
	gc.SetLineWidth(1)
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			i := row*r.Width + col
			if col+1 < r.Width && r.Regimes[i] != r.Regimes[i+1] {
				drawDot(gc, col+1, row)
			}
			if row+1 < r.Height && r.Regimes[i] != r.Regimes[(row+1)*r.Width+col] {
				drawDot(gc, col, row+1)
			}
		}
	}

	res.Header().Set("Content-Type", "image/png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, dest); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Write(buf.Bytes())
}

func drawDot(gc *draw2dimg.GraphicContext, x, y int) {
	gc.BeginPath()
	gc.MoveTo(float64(x), float64(y))
	gc.LineTo(float64(x)+1, float64(y))
	gc.Stroke()
}

// planetJSON is the wire shape for /planet.json: the dense fields, the
// regime field as raw ordinals, and the glacial mask as decoded class names.
type planetJSON struct {
	Width, Height int
	Heights       []float64
	MAPField       []float64
	RegimeOrdinals []int
	GlacialNames   []string
	TerrainClass   string
	CellSizeM      float64
	Score          float64
	GenerationTimeMS int64
}

func planetJSONHandler(res http.ResponseWriter, req *http.Request) {
	r, err := generateFromRequest(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	srv.set(r)

	out := planetJSON{
		Width:            r.Width,
		Height:           r.Height,
		Heights:          r.Heights,
		MAPField:         r.MAPField,
		RegimeOrdinals:   make([]int, len(r.Regimes)),
		GlacialNames:     make([]string, len(r.GlacialMask)),
		TerrainClass:     r.TerrainClass.String(),
		CellSizeM:        various.RoundToDecimals(r.CellSizeM, 1),
		Score:            various.RoundToDecimals(r.Score.Total, 3),
		GenerationTimeMS: r.GenerationTimeMS,
	}
	for i, reg := range r.Regimes {
		out.RegimeOrdinals[i] = int(reg)
	}
	for i, g := range r.GlacialMask {
		out.GlacialNames[i] = g.String()
	}

	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(out); err != nil {
		log.Println("planet.json: encode failed:", err)
	}
}
