package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// CreateQuestion asks a question for the authenticated user. Tags are matched
// case-insensitively and created on first use; the first spelling of a tag
// wins. The author earns the question reputation in the same transaction.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	names := domain.DedupeTagNames(input.Tags)

	var q *domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		q, err = s.questions.Create(txCtx, userID, title, content)
		if err != nil {
			return fmt.Errorf("create question: %w", err)
		}

		tagIDs := make([]uuid.UUID, 0, len(names))
		for _, name := range names {
			tag, err := s.tags.Upsert(txCtx, name)
			if err != nil {
				return fmt.Errorf("upsert tag %q: %w", name, err)
			}
			tagIDs = append(tagIDs, tag.ID)
		}
		if err := s.tags.LinkQuestion(txCtx, q.ID, tagIDs); err != nil {
			return fmt.Errorf("link tags: %w", err)
		}

		if _, err := s.interactions.Record(txCtx, domain.Interaction{
			UserID:     userID,
			Action:     domain.ActionAskQuestion,
			QuestionID: &q.ID,
			TagIDs:     tagIDs,
		}); err != nil {
			return fmt.Errorf("record interaction: %w", err)
		}

		if err := s.users.AdjustReputation(txCtx, userID, s.rep.QuestionAskedDelta().Author); err != nil {
			return fmt.Errorf("author reputation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question created",
		slog.String("user_id", userID.String()),
		slog.String("question_id", q.ID.String()),
		slog.Int("tags", len(names)),
	)

	return q, nil
}
