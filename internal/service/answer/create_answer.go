package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// CreateAnswer answers a question as the authenticated user and records the
// activity under the question's tags.
func (s *Service) CreateAnswer(ctx context.Context, input CreateAnswerInput) (*domain.Answer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var a *domain.Answer
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.questions.GetByID(txCtx, input.QuestionID); err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		var err error
		a, err = s.answers.Create(txCtx, input.QuestionID, userID, strings.TrimSpace(input.Content))
		if err != nil {
			return fmt.Errorf("create answer: %w", err)
		}

		tagIDs, err := s.tags.IDsByQuestion(txCtx, input.QuestionID)
		if err != nil {
			return fmt.Errorf("question tags: %w", err)
		}
		if _, err := s.interactions.Record(txCtx, domain.Interaction{
			UserID:     userID,
			Action:     domain.ActionAnswer,
			QuestionID: &a.QuestionID,
			AnswerID:   &a.ID,
			TagIDs:     tagIDs,
		}); err != nil {
			return fmt.Errorf("record interaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer created",
		slog.String("user_id", userID.String()),
		slog.String("question_id", a.QuestionID.String()),
		slog.String("answer_id", a.ID.String()),
	)

	return a, nil
}
