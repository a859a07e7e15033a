package summary

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/caremap/healthdesert/internal/domain/entities"
	"github.com/caremap/healthdesert/internal/domain/providers"
	"github.com/caremap/healthdesert/pkg/config"
)

// GeminiProvider generates summaries through the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed summary provider.
func NewGeminiProvider(ctx context.Context, cfg *config.GeminiConfig) (providers.SummaryProvider, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) SummarizeFacility(ctx context.Context, facility *entities.Facility, analysis *entities.FacilityAnalysis) (string, error) {
	return p.generate(ctx, facilitySystemPrompt, buildFacilityPrompt(facility, analysis))
}

func (p *GeminiProvider) SummarizeDesert(ctx context.Context, zone *entities.DesertZone, analysis *entities.DesertAnalysis) (string, error) {
	return p.generate(ctx, desertSystemPrompt, buildDesertPrompt(zone, analysis))
}

func (p *GeminiProvider) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	temperature := float32(0.3)
	genCfg := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   800,
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	contents := []*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, genCfg)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("gemini response has no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("gemini response has no content parts")
	}

	text := strings.TrimSpace(candidate.Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("gemini response has empty text")
	}
	return text, nil
}
