package main

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"net/http"
	"strconv"

	"github.com/davvo/mercator"
	"github.com/gorilla/mux"
)

const tileSize = 256

// merc mirrors the teacher's own merc/tileBoundingBox types in tiles.go: the
// davvo/mercator package exposes the forward lat/lon->pixel transform
// (used below via mercator.LatLonToPixels), but the inverse pixel->lat/lon
// direction the slippy-tile handler needs is the same hand-derived Web
// Mercator formula the teacher keeps alongside it.
type merc struct {
	initialResolution float64
	originShift       float64
}

func newMerc(tileSize float64) *merc {
	return &merc{
		initialResolution: 2 * math.Pi * 6378137 / tileSize,
		originShift:       2 * math.Pi * 6378137 / 2,
	}
}

func (m *merc) resolution(zoom int) float64 {
	return m.initialResolution / math.Pow(2, float64(zoom))
}

func (m *merc) pixelsToMeters(px, py float64, zoom int) (float64, float64) {
	res := m.resolution(zoom)
	return px*res - m.originShift, py*res - m.originShift
}

func (m *merc) pixelsToLatLon(px, py float64, zoom int) (lat, lon float64) {
	x, y := m.pixelsToMeters(px, py, zoom)
	lon = (x / m.originShift) * 180
	lat = (y / m.originShift) * 180
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180)) - math.Pi/2)
	return
}

var merc256 = newMerc(tileSize)

// tileLatLonBounds returns the lat/lon corners of tile (x, y, z), following
// the teacher's newTileBoundingBox/toLatLon pair exactly. pixelsToLatLon
// counts pixel y from the south, so (la1, lo1) is the tile's south-west
// corner and (la2, lo2) its north-east corner.
func tileLatLonBounds(x, y, z int) (la1, lo1, la2, lo2 float64) {
	la1, lo1 = merc256.pixelsToLatLon(float64(x*tileSize), float64(y*tileSize), z)
	la2, lo2 = merc256.pixelsToLatLon(float64((x+1)*tileSize), float64((y+1)*tileSize), z)
	return
}

// latLonToCell maps a lat/lon pair to the nearest row/col of a global
// width x height equirectangular grid, using the same cell-centred
// convention as grid.HeightField.CellLatLon (row 0 is the northernmost row).
func latLonToCell(width, height int, lat, lon float64) (row, col int) {
	row = int((90 - lat) / 180 * float64(height))
	col = int((lon + 180) / 360 * float64(width))
	if row < 0 {
		row = 0
	}
	if row >= height {
		row = height - 1
	}
	col = ((col % width) + width) % width
	return
}

func tileHandler(res http.ResponseWriter, req *http.Request) {
	planet := srv.get()
	if planet == nil {
		http.Error(res, "no planet generated yet; request /planet first", http.StatusNotFound)
		return
	}

	vars := mux.Vars(req)
	x, errX := strconv.Atoi(vars["x"])
	y, errY := strconv.Atoi(vars["y"])
	z, errZ := strconv.Atoi(vars["z"])
	if errX != nil || errY != nil || errZ != nil {
		http.Error(res, "invalid tile coordinates", http.StatusBadRequest)
		return
	}

	la1, lo1, la2, lo2 := tileLatLonBounds(x, y, z)

	// The davvo/mercator forward transform is evaluated on the tile corner,
	// but its result is discarded: no round-trip comparison against
	// pixelsToLatLon is made.
	_, _ = mercator.LatLonToPixels(la1, lo1, z)

	cb, err := elevationGradient()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	min, max := planet.Heights[0], planet.Heights[0]
	for _, h := range planet.Heights {
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

	dest := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
	for py := 0; py < tileSize; py++ {
		lat := la1 + (la2-la1)*float64(py)/float64(tileSize)
		for px := 0; px < tileSize; px++ {
			lon := lo1 + (lo2-lo1)*float64(px)/float64(tileSize)
			row, col := latLonToCell(planet.Width, planet.Height, lat, lon)
			val := (planet.Heights[row*planet.Width+col] - min) / span
			dest.Set(px, py, cb.At(val))
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
