package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// ToggleSaveQuestion adds the question to the caller's collection, or removes
// it when already saved, and returns the new state. If a concurrent toggle
// changed the collection first, it fails with domain.ErrConflict.
func (s *Service) ToggleSaveQuestion(ctx context.Context, questionID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	var saved bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.questions.GetByID(txCtx, questionID); err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		was, err := s.questions.IsSaved(txCtx, userID, questionID)
		if err != nil {
			return fmt.Errorf("saved state: %w", err)
		}

		var changed bool
		if was {
			changed, err = s.questions.Unsave(txCtx, userID, questionID)
		} else {
			changed, err = s.questions.Save(txCtx, userID, questionID)
		}
		if err != nil {
			return fmt.Errorf("toggle save: %w", err)
		}
		if !changed {
			return fmt.Errorf("toggle save of question %s: %w", questionID, domain.ErrConflict)
		}

		saved = !was
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "question save toggled",
		slog.String("user_id", userID.String()),
		slog.String("question_id", questionID.String()),
		slog.Bool("saved", saved),
	)

	return saved, nil
}
