package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// ListTags returns a page of tags with their question counts.
func (s *Service) ListTags(ctx context.Context, input ListTagsInput) (domain.Page[domain.TagCount], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.TagCount]{}, err
	}

	page := input.Page.Normalize()
	items, total, err := s.tags.List(ctx, domain.TagFilter{Search: input.Search, Sort: input.Sort, Page: page})
	if err != nil {
		return domain.Page[domain.TagCount]{}, fmt.Errorf("list tags: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

// GetTagQuestions returns a tag with a page of its questions.
func (s *Service) GetTagQuestions(ctx context.Context, input TagQuestionsInput) (*TagQuestions, error) {
	tag, err := s.tags.GetByID(ctx, input.TagID)
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}

	followers, err := s.tags.CountFollowers(ctx, input.TagID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	page := input.Page.Normalize()
	items, total, err := s.questions.List(ctx, domain.QuestionFilter{
		Search: input.Search,
		Sort:   domain.QuestionSortNewest,
		TagIDs: []uuid.UUID{input.TagID},
		Page:   page,
	})
	if err != nil {
		return nil, fmt.Errorf("list tag questions: %w", err)
	}

	return &TagQuestions{
		Tag:       *tag,
		Followers: followers,
		Questions: domain.NewPage(items, total, page),
	}, nil
}

// FollowTag adds the authenticated user to the tag's followers and returns
// the follower count. Following twice is a no-op.
func (s *Service) FollowTag(ctx context.Context, tagID uuid.UUID) (int, error) {
	return s.setFollow(ctx, tagID, true)
}

// UnfollowTag removes the authenticated user from the tag's followers and
// returns the follower count. Unfollowing a tag not followed is a no-op.
func (s *Service) UnfollowTag(ctx context.Context, tagID uuid.UUID) (int, error) {
	return s.setFollow(ctx, tagID, false)
}

func (s *Service) setFollow(ctx context.Context, tagID uuid.UUID, follow bool) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if _, err := s.tags.GetByID(ctx, tagID); err != nil {
		return 0, fmt.Errorf("get tag: %w", err)
	}

	var (
		changed bool
		err     error
	)
	if follow {
		changed, err = s.tags.Follow(ctx, tagID, userID)
	} else {
		changed, err = s.tags.Unfollow(ctx, tagID, userID)
	}
	if err != nil {
		return 0, fmt.Errorf("update followers: %w", err)
	}

	if changed {
		s.log.InfoContext(ctx, "tag followers changed",
			slog.String("user_id", userID.String()),
			slog.String("tag_id", tagID.String()),
			slog.Bool("following", follow),
		)
	}

	n, err := s.tags.CountFollowers(ctx, tagID)
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return n, nil
}
