package summary

import (
	"context"

	"github.com/caremap/healthdesert/internal/domain/entities"
	"github.com/caremap/healthdesert/internal/domain/providers"
)

// completionClient is the slice of the OpenAI client this adapter needs.
type completionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIProvider generates summaries through the OpenAI chat completions API.
type OpenAIProvider struct {
	client completionClient
}

// NewOpenAIProvider wraps a chat completion client as a summary provider.
func NewOpenAIProvider(client completionClient) providers.SummaryProvider {
	return &OpenAIProvider{client: client}
}

func (p *OpenAIProvider) SummarizeFacility(ctx context.Context, facility *entities.Facility, analysis *entities.FacilityAnalysis) (string, error) {
	return p.client.Complete(ctx, facilitySystemPrompt, buildFacilityPrompt(facility, analysis))
}

func (p *OpenAIProvider) SummarizeDesert(ctx context.Context, zone *entities.DesertZone, analysis *entities.DesertAnalysis) (string, error) {
	return p.client.Complete(ctx, desertSystemPrompt, buildDesertPrompt(zone, analysis))
}
