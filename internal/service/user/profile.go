package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// GetUserInfo returns a user's profile page: the user, their totals and the
// badges those totals earn. The counters are read concurrently.
func (s *Service) GetUserInfo(ctx context.Context, userID uuid.UUID) (*domain.UserInfo, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetUserInfo: %w", err)
	}

	var stats domain.UserStats
	counters := []struct {
		dst  *int
		read func(context.Context, uuid.UUID) (int, error)
	}{
		{&stats.TotalQuestions, s.users.CountQuestions},
		{&stats.TotalAnswers, s.users.CountAnswers},
		{&stats.QuestionUpvotes, s.users.QuestionUpvotes},
		{&stats.AnswerUpvotes, s.users.AnswerUpvotes},
		{&stats.QuestionViews, s.users.QuestionViews},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counters {
		g.Go(func() error {
			n, err := c.read(gctx, userID)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user.GetUserInfo: counters: %w", err)
	}

	return &domain.UserInfo{
		User:      *user,
		UserStats: stats,
		Badges:    domain.AssignBadges(stats.BadgeCriteria(), s.badges),
	}, nil
}

// ListUsers returns a page of community cards, each with the member's most
// interacted tags.
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) (domain.Page[domain.UserCard], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.UserCard]{}, err
	}

	page := input.Page.Normalize()
	users, total, err := s.users.List(ctx, domain.UserFilter{Search: input.Search, Sort: input.Sort, Page: page})
	if err != nil {
		return domain.Page[domain.UserCard]{}, fmt.Errorf("user.ListUsers: %w", err)
	}

	cards := make([]domain.UserCard, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cardConcurrency)
	for i, u := range users {
		cards[i].User = u
		g.Go(func() error {
			counts, err := s.tags.InteractionCounts(gctx, u.ID)
			if err != nil {
				return err
			}
			top := domain.RankTagCounts(counts, cardTopTags)
			refs := make([]domain.TagRef, 0, len(top))
			for _, tc := range top {
				refs = append(refs, domain.TagRef{ID: tc.ID, Name: tc.Name})
			}
			cards[i].TopTags = refs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Page[domain.UserCard]{}, fmt.Errorf("user.ListUsers: top tags: %w", err)
	}

	return domain.NewPage(cards, total, page), nil
}

// UpdateProfile updates the authenticated user's editable profile fields.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateProfile(ctx, userID, input.toUpdate())
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}
