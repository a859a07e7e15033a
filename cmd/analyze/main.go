package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/caremap/healthdesert/internal/adapters/curated"
	"github.com/caremap/healthdesert/internal/adapters/dataset"
	"github.com/caremap/healthdesert/internal/adapters/providers/summary"
	"github.com/caremap/healthdesert/internal/application/services"
	"github.com/caremap/healthdesert/internal/domain/entities"
	"github.com/caremap/healthdesert/internal/infrastructure/observability"
	"github.com/caremap/healthdesert/pkg/config"
)

func main() {
	var inputPath string
	var outputPath string
	var selectionsPath string
	var zonesPath string
	var noAI bool
	var pretty bool

	flag.StringVar(&inputPath, "input", "", "dataset file (CSV or XLSX), overrides DATASET_PATH")
	flag.StringVar(&outputPath, "output", "", "output artifact path, \"-\" for stdout, overrides OUTPUT_PATH")
	flag.StringVar(&selectionsPath, "selections", "", "facility selections JSON, overrides SELECTIONS_PATH")
	flag.StringVar(&zonesPath, "zones", "", "desert zones JSON, overrides DESERT_ZONES_PATH")
	flag.BoolVar(&noAI, "no-ai", false, "skip narrative summaries")
	flag.BoolVar(&pretty, "pretty", true, "pretty-print the output JSON")
	flag.Parse()

	// Optional .env for local runs.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if inputPath != "" {
		cfg.Dataset.Path = inputPath
	}
	if outputPath != "" {
		cfg.Dataset.OutputPath = outputPath
	}
	if selectionsPath != "" {
		cfg.Dataset.SelectionsPath = selectionsPath
	}
	if zonesPath != "" {
		cfg.Dataset.ZonesPath = zonesPath
	}
	if noAI {
		cfg.Summary.Provider = "none"
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OTEL.Enabled {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up OpenTelemetry")
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("OpenTelemetry shutdown failed")
			}
		}()
	}

	if err := run(ctx, cfg, pretty); err != nil {
		log.Fatal().Err(err).Msg("analysis run failed")
	}
}

func run(ctx context.Context, cfg *config.Config, pretty bool) error {
	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	repo := dataset.NewRepository(ds)
	log.Info().Int("rows", repo.RowCount()).Str("path", cfg.Dataset.Path).Msg("dataset loaded")

	selections, err := curated.LoadSelections(cfg.Dataset.SelectionsPath)
	if err != nil {
		return err
	}
	if err := curated.ValidateSelections(selections, repo.RowCount()); err != nil {
		return err
	}

	zones, err := curated.LoadDesertZones(cfg.Dataset.ZonesPath)
	if err != nil {
		return err
	}
	if err := curated.ValidateDesertZones(zones); err != nil {
		return err
	}

	provider, err := summary.NewProvider(ctx, cfg)
	if err != nil {
		return err
	}
	if provider == nil {
		log.Info().Msg("narrative summaries disabled")
	}

	pipeline := services.NewAnalysisPipeline(repo, provider, cfg.Summary.Pause, cfg.Dataset.DataSource)
	if cfg.OTEL.Enabled {
		metrics, err := observability.InitMetrics()
		if err != nil {
			log.Warn().Err(err).Msg("failed to init metrics")
		} else {
			pipeline.SetMetrics(metrics)
		}
	}

	report, err := pipeline.Run(ctx, selections, zones)
	if err != nil {
		return err
	}

	return writeReport(report, cfg.Dataset.OutputPath, pretty)
}

func writeReport(report *entities.Report, path string, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Info().
		Str("path", path).
		Int("bytes", len(data)).
		Int("alerts", report.Metadata.TotalAlerts).
		Int("warnings", report.Metadata.TotalWarnings).
		Msg("analysis artifact written")
	return nil
}
