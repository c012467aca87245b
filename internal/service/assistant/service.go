// Package assistant drafts answers to questions with an external text
// generation provider.
package assistant

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/techflow-backend/internal/adapter/provider/edenai"
)

type textGenerator interface {
	GenerateText(ctx context.Context, cfg edenai.ProviderConfig, prompt string) (string, error)
}

// Service generates AI answer drafts.
type Service struct {
	log       *slog.Logger
	generator textGenerator
	cfg       edenai.ProviderConfig
}

// NewService creates a new assistant service.
func NewService(logger *slog.Logger, generator textGenerator, cfg edenai.ProviderConfig) *Service {
	return &Service{
		log:       logger.With("service", "assistant"),
		generator: generator,
		cfg:       cfg,
	}
}
