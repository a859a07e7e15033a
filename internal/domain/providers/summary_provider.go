package providers

import (
	"context"
	"errors"

	"github.com/caremap/healthdesert/internal/domain/entities"
)

// ErrSummaryUnauthorized indicates the text-generation service rejected our credentials.
var ErrSummaryUnauthorized = errors.New("summary provider rejected credentials")

// SummaryProvider generates narrative summaries for report entries.
// The contract is deliberately thin: send the record plus its rule-based
// findings, receive analyst prose or an error.
type SummaryProvider interface {
	SummarizeFacility(ctx context.Context, facility *entities.Facility, analysis *entities.FacilityAnalysis) (string, error)
	SummarizeDesert(ctx context.Context, zone *entities.DesertZone, analysis *entities.DesertAnalysis) (string, error)
}
