package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// GetQuestion returns the hydrated question. The viewer's vote and save state
// is filled in for authenticated requests.
func (s *Service) GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.QuestionDetail, error) {
	summary, err := s.questions.GetSummary(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	detail := &domain.QuestionDetail{QuestionSummary: *summary}
	if viewerID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		detail.Viewer, err = s.questions.ViewerState(ctx, questionID, viewerID)
		if err != nil {
			return nil, fmt.Errorf("viewer state: %w", err)
		}
	}
	return detail, nil
}

// ListQuestions returns a page of the home feed.
//
// The recommended sort narrows the feed to questions carrying the viewer's
// most interacted tags, excluding the viewer's own questions, newest first.
// Anonymous viewers and viewers without interactions get the newest feed.
func (s *Service) ListQuestions(ctx context.Context, input ListQuestionsInput) (domain.Page[domain.QuestionSummary], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.QuestionSummary]{}, err
	}

	f := domain.QuestionFilter{
		Search: input.Search,
		Sort:   input.Sort,
		Page:   input.Page.Normalize(),
	}

	if f.Sort == domain.QuestionSortRecommended {
		f.Sort = domain.QuestionSortNewest
		if viewerID, ok := ctxutil.UserIDFromCtx(ctx); ok {
			counts, err := s.tags.InteractionCounts(ctx, viewerID)
			if err != nil {
				return domain.Page[domain.QuestionSummary]{}, fmt.Errorf("interaction counts: %w", err)
			}
			top := domain.RankTagCounts(counts, recommendedTagCount)
			if len(top) > 0 {
				f.TagIDs = make([]uuid.UUID, 0, len(top))
				for _, tc := range top {
					f.TagIDs = append(f.TagIDs, tc.ID)
				}
				f.ExcludeAuthorID = &viewerID
			}
		}
	}

	return s.list(ctx, f)
}

// ListSavedQuestions returns a page of the authenticated user's collection.
func (s *Service) ListSavedQuestions(ctx context.Context, input ListQuestionsInput) (domain.Page[domain.QuestionSummary], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.QuestionSummary]{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Page[domain.QuestionSummary]{}, err
	}
	if input.Sort == domain.QuestionSortRecommended {
		input.Sort = domain.QuestionSortNewest
	}

	return s.list(ctx, domain.QuestionFilter{
		Search:  input.Search,
		Sort:    input.Sort,
		SavedBy: &userID,
		Page:    input.Page.Normalize(),
	})
}

// ListUserQuestions returns a page of one author's questions, most upvoted first.
func (s *Service) ListUserQuestions(ctx context.Context, authorID uuid.UUID, page domain.PageParams) (domain.Page[domain.QuestionSummary], error) {
	return s.list(ctx, domain.QuestionFilter{
		Sort:     domain.QuestionSortMostVoted,
		AuthorID: &authorID,
		Page:     page.Normalize(),
	})
}

func (s *Service) list(ctx context.Context, f domain.QuestionFilter) (domain.Page[domain.QuestionSummary], error) {
	items, total, err := s.questions.List(ctx, f)
	if err != nil {
		return domain.Page[domain.QuestionSummary]{}, fmt.Errorf("list questions: %w", err)
	}
	return domain.NewPage(items, total, f.Page), nil
}
