package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// EditAnswer replaces the content of the caller's own answer.
func (s *Service) EditAnswer(ctx context.Context, input EditAnswerInput) (*domain.Answer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var a *domain.Answer
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.requireAuthor(txCtx, input.AnswerID, userID); err != nil {
			return err
		}
		var err error
		a, err = s.answers.Update(txCtx, input.AnswerID, strings.TrimSpace(input.Content))
		if err != nil {
			return fmt.Errorf("update answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer updated",
		slog.String("user_id", userID.String()),
		slog.String("answer_id", a.ID.String()),
	)
	return a, nil
}

// DeleteAnswer removes the caller's own answer with its votes and interactions.
func (s *Service) DeleteAnswer(ctx context.Context, answerID uuid.UUID) (domain.CascadeReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CascadeReport{}, domain.ErrUnauthorized
	}

	var report domain.CascadeReport
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.requireAuthor(txCtx, answerID, userID); err != nil {
			return err
		}
		var err error
		report, err = s.cascade.DeleteAnswer(txCtx, answerID)
		if err != nil {
			return fmt.Errorf("delete answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.CascadeReport{}, err
	}

	s.log.InfoContext(ctx, "answer deleted",
		slog.String("user_id", userID.String()),
		slog.String("answer_id", answerID.String()),
		slog.Int64("votes", report.Votes),
	)
	return report, nil
}
