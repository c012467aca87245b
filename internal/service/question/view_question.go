package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// ViewQuestion counts a view and returns the new view count. Every call
// counts; for authenticated viewers the first view is also recorded as an
// interaction carrying the question's tags.
func (s *Service) ViewQuestion(ctx context.Context, questionID uuid.UUID) (int, error) {
	var views int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		views, err = s.questions.IncrementViews(txCtx, questionID)
		if err != nil {
			return fmt.Errorf("increment views: %w", err)
		}

		viewerID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return nil
		}

		tagIDs, err := s.tags.IDsByQuestion(txCtx, questionID)
		if err != nil {
			return fmt.Errorf("question tags: %w", err)
		}
		if _, err := s.interactions.RecordViewOnce(txCtx, domain.Interaction{
			UserID:     viewerID,
			Action:     domain.ActionView,
			QuestionID: &questionID,
			TagIDs:     tagIDs,
		}); err != nil {
			return fmt.Errorf("record view: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.DebugContext(ctx, "question viewed",
		"question_id", questionID.String(),
		"views", views,
	)
	return views, nil
}
