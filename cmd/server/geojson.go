package main

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	geojson "github.com/paulmach/go.geojson"
)

// tileSampleGrid is the number of sample points per axis within one tile's
// lat/lon bounds -- coarse enough to stay a quick inspection payload rather
// than dumping the whole underlying heightfield as points.
const tileSampleGrid = 8

// tileGeoJSONHandler returns a GeoJSON FeatureCollection of sample points
// within the tile's bounding box, each carrying elevation/regime/climate
// properties -- the same geojson.NewFeatureCollection/NewPointFeature/
// SetProperty/AddFeature shape as the teacher's GetGeoJSONCities, applied to
// terrain samples instead of city records.
func tileGeoJSONHandler(res http.ResponseWriter, req *http.Request) {
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

	fc := geojson.NewFeatureCollection()
	for i := 0; i < tileSampleGrid; i++ {
		lat := la1 + (la2-la1)*(float64(i)+0.5)/float64(tileSampleGrid)
		for j := 0; j < tileSampleGrid; j++ {
			lon := lo1 + (lo2-lo1)*(float64(j)+0.5)/float64(tileSampleGrid)

			row, col := latLonToCell(planet.Width, planet.Height, lat, lon)
			idx := row*planet.Width + col

			f := geojson.NewPointFeature([]float64{lon, lat})
			f.SetProperty("elevation_m", planet.Heights[idx])
			f.SetProperty("regime", planet.Regimes[idx].String())
			f.SetProperty("map_mm_yr", planet.MAPField[idx])
			f.SetProperty("glacial", planet.GlacialMask[idx].String())
			f.SetProperty("terrain_class", planet.TerrainClass.String())
			fc.AddFeature(f)
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Write(data)
}
