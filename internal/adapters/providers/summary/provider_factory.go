package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/caremap/healthdesert/internal/domain/providers"
	"github.com/caremap/healthdesert/internal/infrastructure/clients/openai"
	"github.com/caremap/healthdesert/pkg/config"
)

// NewProvider builds the configured summary provider. A nil provider (with
// nil error) means summaries are disabled: either explicitly, or because the
// selected provider has no API key.
func NewProvider(ctx context.Context, cfg *config.Config) (providers.SummaryProvider, error) {
	switch strings.ToLower(cfg.Summary.Provider) {
	case "", "none":
		return nil, nil

	case "openai":
		if cfg.OpenAI.APIKey == "" {
			log.Warn().Msg("OPENAI_API_KEY not set, summaries disabled")
			return nil, nil
		}
		client, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			return nil, err
		}
		return NewOpenAIProvider(client), nil

	case "gemini":
		if cfg.Gemini.APIKey == "" {
			log.Warn().Msg("GEMINI_API_KEY not set, summaries disabled")
			return nil, nil
		}
		return NewGeminiProvider(ctx, &cfg.Gemini)

	case "mock":
		return NewMockProvider(), nil

	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.Summary.Provider)
	}
}
