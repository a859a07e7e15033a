package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/caremap/healthdesert/internal/adapters/curated"
	"github.com/caremap/healthdesert/internal/adapters/dataset"
	"github.com/caremap/healthdesert/internal/infrastructure/observability"
	"github.com/caremap/healthdesert/internal/quality"
	"github.com/caremap/healthdesert/pkg/config"
)

func main() {
	var inputPath string
	var selectionsPath string
	var zonesPath string

	flag.StringVar(&inputPath, "input", "", "dataset file (CSV or XLSX), overrides DATASET_PATH")
	flag.StringVar(&selectionsPath, "selections", "", "facility selections JSON, overrides SELECTIONS_PATH")
	flag.StringVar(&zonesPath, "zones", "", "desert zones JSON, overrides DESERT_ZONES_PATH")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if inputPath != "" {
		cfg.Dataset.Path = inputPath
	}
	if selectionsPath != "" {
		cfg.Dataset.SelectionsPath = selectionsPath
	}
	if zonesPath != "" {
		cfg.Dataset.ZonesPath = zonesPath
	}

	observability.InitLogger("health-desert-validate", cfg.App.Env)

	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}

	selections, err := curated.LoadSelections(cfg.Dataset.SelectionsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load facility selections")
	}

	zones, err := curated.LoadDesertZones(cfg.Dataset.ZonesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load desert zones")
	}

	summary := quality.BuildSummary(ds, selections, zones)

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal quality summary")
	}
	fmt.Println(string(out))

	if !summary.OK() {
		os.Exit(1)
	}
}
