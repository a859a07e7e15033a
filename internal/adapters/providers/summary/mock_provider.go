package summary

import (
	"context"
	"fmt"

	"github.com/caremap/healthdesert/internal/domain/entities"
	"github.com/caremap/healthdesert/internal/domain/providers"
)

// MockProvider returns deterministic canned summaries for development and
// tests, without any network dependency.
type MockProvider struct{}

// NewMockProvider creates a new mock summary provider.
func NewMockProvider() providers.SummaryProvider {
	return &MockProvider{}
}

func (m *MockProvider) SummarizeFacility(ctx context.Context, facility *entities.Facility, analysis *entities.FacilityAnalysis) (string, error) {
	alerts, warnings := entities.CountFlags(analysis.All())
	return fmt.Sprintf("Mock summary for %s (%s, %s): %d specialties reported, %d alerts, %d warnings from rule-based analysis.",
		facility.Name, facility.City, facility.Region, len(facility.Specialties), alerts, warnings), nil
}

func (m *MockProvider) SummarizeDesert(ctx context.Context, zone *entities.DesertZone, analysis *entities.DesertAnalysis) (string, error) {
	alerts, _ := entities.CountFlags(analysis.All())
	return fmt.Sprintf("Mock summary for %s (%s): population ~%d, %d missing specialties, %d alerts from rule-based analysis.",
		zone.Name, zone.Region, zone.Population, len(zone.MissingSpecialties), alerts), nil
}
