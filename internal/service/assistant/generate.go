package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// GenerateAnswer asks the text generation provider to answer a question.
// The question text is the prompt; the reply is returned unmodified.
func (s *Service) GenerateAnswer(ctx context.Context, input GenerateAnswerInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return "", err
	}

	text, err := s.generator.GenerateText(ctx, s.cfg, strings.TrimSpace(input.Question))
	if err != nil {
		return "", fmt.Errorf("assistant.GenerateAnswer: %w", err)
	}

	s.log.InfoContext(ctx, "answer generated",
		slog.String("user_id", userID.String()),
		slog.Int("length", len(text)),
	)
	return text, nil
}
