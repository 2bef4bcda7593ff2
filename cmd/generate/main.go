// Команда generate строит каталог участков Манхэттена по реальным координатам
// и печатает его в stdout как JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/shenikar/geoprice/internal/config"
	"github.com/shenikar/geoprice/internal/generator"
	"github.com/shenikar/geoprice/internal/geocoding"
	"github.com/shenikar/geoprice/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	pretty := flag.Bool("pretty", true, "indent JSON output")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Логи в stderr, чтобы stdout содержал только JSON
	log := logger.New(cfg.LogLevel)
	log.SetOutput(os.Stderr)

	if !cfg.GeocodingEnabled() {
		log.Fatal("GOOGLE_MAPS_API_KEY environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := geocoding.NewGoogleProvider(cfg.GoogleMapsAPIKey, cfg.GeocodeTimeout)
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}
	gen := generator.New(geocoding.NewClient(provider, log), log, generator.WithPause(cfg.GeocodePause))

	areas, err := gen.GenerateCatalog(ctx, generator.ManhattanNeighborhoods())
	if err != nil {
		log.Fatalf("Failed to generate land areas: %v", err)
	}
	log.WithField("count", len(areas)).Info("Generated land areas")

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(areas); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
