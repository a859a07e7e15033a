package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/caremap/healthdesert/internal/analysis"
	"github.com/caremap/healthdesert/internal/domain/entities"
	"github.com/caremap/healthdesert/internal/domain/providers"
	"github.com/caremap/healthdesert/internal/domain/repositories"
	"github.com/caremap/healthdesert/internal/infrastructure/observability"
	"github.com/caremap/healthdesert/pkg/utils"
)

// citedFields are the dataset columns the rule-based findings draw on,
// recorded in every facility citation.
var citedFields = []string{
	"specialties", "procedure", "equipment", "capability",
	"description", "organizationDescription", "numberDoctors", "capacity",
}

// AnalysisPipeline runs the single-pass batch analysis: facility findings,
// desert-zone findings, optional narrative summaries, report assembly.
type AnalysisPipeline struct {
	dataset    repositories.DatasetRepository
	summaries  providers.SummaryProvider
	pause      time.Duration
	dataSource string
	metrics    *observability.Metrics
	tracer     trace.Tracer
}

// NewAnalysisPipeline creates the pipeline. A nil summaries provider leaves
// every aiSummary null.
func NewAnalysisPipeline(dataset repositories.DatasetRepository, summaries providers.SummaryProvider, pause time.Duration, dataSource string) *AnalysisPipeline {
	return &AnalysisPipeline{
		dataset:    dataset,
		summaries:  summaries,
		pause:      pause,
		dataSource: dataSource,
		tracer:     otel.Tracer("github.com/caremap/healthdesert/pipeline"),
	}
}

// SetMetrics attaches pipeline metrics.
func (p *AnalysisPipeline) SetMetrics(m *observability.Metrics) {
	p.metrics = m
}

// Run processes every selected facility and desert zone once and assembles
// the output report.
func (p *AnalysisPipeline) Run(ctx context.Context, selections []entities.FacilitySelection, zones []entities.DesertZone) (*entities.Report, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.run",
		trace.WithAttributes(
			attribute.Int("pipeline.selections", len(selections)),
			attribute.Int("pipeline.zones", len(zones)),
		))
	defer span.End()

	report := &entities.Report{
		Facilities: make([]*entities.FacilityReport, 0, len(selections)),
		Deserts:    make([]*entities.DesertReport, 0, len(zones)),
	}

	for _, selection := range selections {
		facilityReport, err := p.analyzeFacility(ctx, selection)
		if err != nil {
			return nil, err
		}
		report.Facilities = append(report.Facilities, facilityReport)
	}

	for i := range zones {
		report.Deserts = append(report.Deserts, p.analyzeDesert(ctx, &zones[i], report.Facilities))
	}

	totalAlerts := 0
	totalWarnings := 0
	for _, f := range report.Facilities {
		totalAlerts += f.AlertCount
		totalWarnings += f.WarningCount
	}
	for _, d := range report.Deserts {
		totalAlerts += d.AlertCount
	}

	report.Metadata = entities.ReportMetadata{
		RunID:              uuid.NewString(),
		GeneratedAt:        time.Now().UTC(),
		TotalFacilities:    len(report.Facilities),
		TotalDeserts:       len(report.Deserts),
		CSVRowsAnalyzed:    p.dataset.RowCount(),
		TotalAlerts:        totalAlerts,
		TotalWarnings:      totalWarnings,
		QuestionCategories: entities.QuestionCategories,
		DataSource:         p.dataSource,
	}

	return report, nil
}

func (p *AnalysisPipeline) analyzeFacility(ctx context.Context, selection entities.FacilitySelection) (*entities.FacilityReport, error) {
	logger := observability.LoggerFromContext(ctx)

	facility, err := p.dataset.Facility(selection)
	if err != nil {
		return nil, err
	}

	profile, regionLabel := p.dataset.RegionProfile(facility.Region, facility.City)
	facilityAnalysis := analysis.AnalyzeFacility(facility, profile, regionLabel)
	alerts, warnings := entities.CountFlags(facilityAnalysis.All())

	aiSummary := p.summarizeFacility(ctx, facility, facilityAnalysis)

	if p.metrics != nil {
		p.metrics.FacilitiesAnalyzed.Add(ctx, 1)
	}
	observability.RecordFindings(ctx, p.metrics, "facility", len(facilityAnalysis.All()))

	logger.Info().
		Str("facility", facility.Name).
		Str("city", facility.City).
		Int("alerts", alerts).
		Int("warnings", warnings).
		Msg("facility analyzed")

	return &entities.FacilityReport{
		ID:           fmt.Sprintf("facility_%d", selection.Row),
		Type:         "facility",
		Lat:          selection.Lat,
		Lng:          selection.Lng,
		Name:         facility.Name,
		City:         facility.City,
		Region:       facility.Region,
		FacilityType: facility.FacilityType,
		Specialties:  orEmpty(facility.Specialties),
		Equipment:    orEmpty(facility.Equipment),
		Capabilities: capN(facility.Capabilities, 8),
		NumDoctors:   facility.NumDoctors,
		BedCapacity:  facility.BedCapacity,
		Analysis:     facilityAnalysis,
		AISummary:    aiSummary,
		AlertCount:   alerts,
		WarningCount: warnings,
		Citation: entities.Citation{
			CSVRow:     facility.CSVRow,
			Source:     facility.SourceURL,
			FieldsUsed: citedFields,
		},
	}, nil
}

func (p *AnalysisPipeline) analyzeDesert(ctx context.Context, zone *entities.DesertZone, facilities []*entities.FacilityReport) *entities.DesertReport {
	logger := observability.LoggerFromContext(ctx)

	desertAnalysis := &entities.DesertAnalysis{
		Geospatial: analysis.AnalyzeDesertGeospatial(zone, facilities),
		UnmetNeeds: analysis.AnalyzeDesertUnmetNeeds(zone),
		NGOGaps:    analysis.AnalyzeDesertNGOGaps(zone, facilities),
	}
	desertAnalysis.EnsureArrays()
	severity := analysis.SeverityScore(zone)
	alerts, _ := entities.CountFlags(desertAnalysis.All())

	aiSummary := p.summarizeDesert(ctx, zone, desertAnalysis)

	if p.metrics != nil {
		p.metrics.DesertsAnalyzed.Add(ctx, 1)
	}
	observability.RecordFindings(ctx, p.metrics, "desert", len(desertAnalysis.All()))

	logger.Info().
		Str("zone", zone.Name).
		Int("severity", severity).
		Int("alerts", alerts).
		Msg("desert zone analyzed")

	return &entities.DesertReport{
		ID:                 "desert_" + utils.SnakeCase(zone.Name),
		Type:               "desert",
		Lat:                zone.Lat,
		Lng:                zone.Lng,
		Name:               zone.Name,
		Region:             zone.Region,
		Population:         zone.Population,
		NearestFacility:    zone.NearestFacility,
		NearestDistanceKm:  zone.NearestDistanceKm,
		MissingSpecialties: orEmpty(zone.MissingSpecialties),
		Context:            zone.Context,
		SeverityScore:      severity,
		Analysis:           desertAnalysis,
		AISummary:          aiSummary,
		Recommendations:    analysis.Recommendations(zone),
		AlertCount:         alerts,
	}
}

func (p *AnalysisPipeline) summarizeFacility(ctx context.Context, facility *entities.Facility, fa *entities.FacilityAnalysis) *string {
	if p.summaries == nil {
		return nil
	}
	text, err := p.summaries.SummarizeFacility(ctx, facility, fa)
	p.afterSummaryCall(ctx)
	if err != nil {
		observability.RecordSummaryError(ctx, p.metrics, "facility")
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("facility", facility.Name).
			Msg("facility summary failed, leaving aiSummary null")
		return nil
	}
	return &text
}

func (p *AnalysisPipeline) summarizeDesert(ctx context.Context, zone *entities.DesertZone, da *entities.DesertAnalysis) *string {
	if p.summaries == nil {
		return nil
	}
	text, err := p.summaries.SummarizeDesert(ctx, zone, da)
	p.afterSummaryCall(ctx)
	if err != nil {
		observability.RecordSummaryError(ctx, p.metrics, "desert")
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("zone", zone.Name).
			Msg("desert summary failed, leaving aiSummary null")
		return nil
	}
	return &text
}

// afterSummaryCall applies the fixed pause between text-generation calls.
// Deliberately no retry or backoff.
func (p *AnalysisPipeline) afterSummaryCall(ctx context.Context) {
	if p.pause <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(p.pause):
	}
}

// capN and orEmpty keep the artifact's list fields bounded and non-nil; the
// front-end expects a JSON array even when a field is empty.
func capN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return orEmpty(items)
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
