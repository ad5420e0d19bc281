// Command runner is a flag-driven, profiled batch entry point for scripted
// planet generation, grounded on the teacher's cmd/runner.go: the same
// -cpuprofile/-memprofile pprof bootstrap, re-purposed from a one-shot
// Voronoi-map export run into a one-shot GlobalParams-to-PlanetResult run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	"github.com/spectrum-art/terra-incognita/terra"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
	out        = flag.String("out", "planet", "output path prefix; writes <out>.png and <out>.json")

	seed = flag.Uint64("seed", 42, "world seed")

	tectonicActivity         = flag.Float64("tectonic_activity", -1, "0..1, defaults to Earth-like")
	waterAbundance           = flag.Float64("water_abundance", -1, "0..1, defaults to Earth-like")
	surfaceAge               = flag.Float64("surface_age", -1, "0..1, defaults to Earth-like")
	climateDiversity         = flag.Float64("climate_diversity", -1, "0..1, defaults to Earth-like")
	glaciation               = flag.Float64("glaciation", -1, "0..1, defaults to Earth-like")
	continentalFragmentation = flag.Float64("continental_fragmentation", -1, "0..1, defaults to Earth-like")
	mountainPrevalence       = flag.Float64("mountain_prevalence", -1, "0..1, defaults to Earth-like")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	p := terra.NewGlobalParams(uint32(*seed))
	overrideIfSet(tectonicActivity, &p.TectonicActivity)
	overrideIfSet(waterAbundance, &p.WaterAbundance)
	overrideIfSet(surfaceAge, &p.SurfaceAge)
	overrideIfSet(climateDiversity, &p.ClimateDiversity)
	overrideIfSet(glaciation, &p.Glaciation)
	overrideIfSet(continentalFragmentation, &p.ContinentalFragmentation)
	overrideIfSet(mountainPrevalence, &p.MountainPrevalence)

	res, err := terra.Generate(context.Background(), p, log.Default())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("generated %dx%d planet (class=%s, score=%.3f) in %dms",
		res.Width, res.Height, res.TerrainClass, res.Score.Total, res.GenerationTimeMS)

	if err := writeGrayscalePNG(*out+".png", res); err != nil {
		log.Fatal(err)
	}
	if err := writeJSON(*out+".json", res); err != nil {
		log.Fatal(err)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}

// overrideIfSet copies a flag's value into dst only when the flag was given
// a non-default (-1) value, leaving the GlobalParams Earth-like default
// otherwise -- the same "zero value means use the config default" idiom the
// teacher's NewConfig/cfg.GeoConfig.X = val assignment chain follows.
func overrideIfSet(flagVal *float64, dst *float64) {
	if *flagVal >= 0 {
		*dst = *flagVal
	}
}

func writeGrayscalePNG(path string, r *terra.PlanetResult) error {
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

	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			val := (r.Heights[row*r.Width+col] - min) / span
			img.SetGray(col, row, color.Gray{Y: uint8(val * 255)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func writeJSON(path string, r *terra.PlanetResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
