package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"auctionfront/internal/api/mockapi"
)

// Dumps the deterministic mock catalog as JSON, for inspecting what a given
// seed produces or for feeding a fixture file back via CATALOG loading.
func main() {
	seed := flag.Int64("seed", 1, "catalog generation seed")
	flag.Parse()

	logger := log.New(os.Stderr, "[catalog] ", log.LstdFlags)

	items := mockapi.GenerateCatalog(*seed, time.Now())
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		logger.Fatalf("encode catalog: %v", err)
	}
}
