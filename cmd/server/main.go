// Command server is a development-only HTTP surface for inspecting
// generated planets, grounded on the teacher's cmd/server/main.go: the same
// gorilla/mux router and flag-driven bootstrap, re-purposed from serving
// Voronoi map tiles to serving dense-grid planet previews and exports.
//
// It is a debugging aid layered on top of the terra library, not a
// production deployment target -- there is no caching, no persistence, and
// every /planet request re-runs the full pipeline.
package main

import (
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/spectrum-art/terra-incognita/terra"
	"github.com/gorilla/mux"
)

var (
	addr           string
	genTimeout     time.Duration
	defaultSeed    int64
)

func init() {
	flag.StringVar(&addr, "addr", ":3333", "address to listen on")
	flag.DurationVar(&genTimeout, "timeout", 10*time.Second, "per-request generation timeout")
	flag.Int64Var(&defaultSeed, "seed", 42, "default world seed when none is given in the query")
}

// state holds the last generated planet so /tile/{z}/{x}/{y} has something
// to slice without re-running the pipeline on every tile fetch.
type state struct {
	mu   sync.Mutex
	last *terra.PlanetResult
}

var srv state

func (s *state) set(r *terra.PlanetResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = r
}

func (s *state) get() *terra.PlanetResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func main() {
	flag.Parse()

	router := mux.NewRouter()
	router.HandleFunc("/planet", planetPNGHandler)
	router.HandleFunc("/planet.json", planetJSONHandler)
	router.HandleFunc("/tile/{z}/{x}/{y}", tileHandler)
	router.HandleFunc("/tile/{z}/{x}/{y}.geojson", tileGeoJSONHandler)

	log.Printf("terra preview server listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
