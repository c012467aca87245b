package answer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// ListAnswers returns a page of the answers to a question.
func (s *Service) ListAnswers(ctx context.Context, input ListAnswersInput) (domain.Page[domain.AnswerSummary], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.AnswerSummary]{}, err
	}
	if _, err := s.questions.GetByID(ctx, input.QuestionID); err != nil {
		return domain.Page[domain.AnswerSummary]{}, fmt.Errorf("get question: %w", err)
	}

	page := input.Page.Normalize()
	rows, total, err := s.answers.List(ctx, domain.AnswerFilter{
		QuestionID: &input.QuestionID,
		Sort:       input.Sort,
		Page:       page,
	})
	if err != nil {
		return domain.Page[domain.AnswerSummary]{}, fmt.Errorf("list answers: %w", err)
	}

	items := make([]domain.AnswerSummary, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.AnswerSummary)
	}
	return domain.NewPage(items, total, page), nil
}

// ListUserAnswers returns a page of one author's answers, most upvoted first,
// each with the title of the question it answers.
func (s *Service) ListUserAnswers(ctx context.Context, authorID uuid.UUID, page domain.PageParams) (domain.Page[domain.AnswerWithQuestion], error) {
	page = page.Normalize()
	items, total, err := s.answers.List(ctx, domain.AnswerFilter{
		AuthorID: &authorID,
		Sort:     domain.AnswerSortHighestUpvotes,
		Page:     page,
	})
	if err != nil {
		return domain.Page[domain.AnswerWithQuestion]{}, fmt.Errorf("list answers: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}
