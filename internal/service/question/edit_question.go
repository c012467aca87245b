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

// EditQuestion changes the title and content of the caller's own question.
func (s *Service) EditQuestion(ctx context.Context, input EditQuestionInput) (*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var q *domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.requireAuthor(txCtx, input.QuestionID, userID); err != nil {
			return err
		}

		var err error
		q, err = s.questions.Update(txCtx, input.QuestionID,
			strings.TrimSpace(input.Title), strings.TrimSpace(input.Content))
		if err != nil {
			return fmt.Errorf("update question: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question updated",
		slog.String("user_id", userID.String()),
		slog.String("question_id", q.ID.String()),
	)

	return q, nil
}

// DeleteQuestion removes the caller's own question together with its
// answers, votes, saves, tag links and interactions.
func (s *Service) DeleteQuestion(ctx context.Context, questionID uuid.UUID) (domain.CascadeReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CascadeReport{}, domain.ErrUnauthorized
	}

	var report domain.CascadeReport
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.requireAuthor(txCtx, questionID, userID); err != nil {
			return err
		}

		var err error
		report, err = s.cascade.DeleteQuestion(txCtx, questionID)
		if err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.CascadeReport{}, err
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("user_id", userID.String()),
		slog.String("question_id", questionID.String()),
		slog.Int64("answers", report.Answers),
		slog.Int64("votes", report.Votes),
		slog.Int64("interactions", report.Interactions),
	)

	return report, nil
}
