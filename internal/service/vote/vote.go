package vote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

// Vote applies a vote request of the authenticated user and returns the new
// tally. The vote row and both reputation changes are written in one
// transaction; a concurrent vote by the same user on the same target that
// wins the race makes this one fail with domain.ErrConflict.
func (s *Service) Vote(ctx context.Context, input VoteInput) (*domain.VoteSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		tr      domain.VoteTransition
		summary domain.VoteSummary
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		authorID, err := s.votes.TargetAuthor(txCtx, input.Kind, input.TargetID)
		if err != nil {
			return fmt.Errorf("load target: %w", err)
		}
		if _, err := s.users.GetByID(txCtx, userID); err != nil {
			return fmt.Errorf("load voter: %w", err)
		}
		if authorID == userID {
			return fmt.Errorf("vote on own %s: %w", input.Kind, domain.ErrForbidden)
		}

		current, err := s.votes.CurrentDirection(txCtx, input.Kind, input.TargetID, userID)
		if err != nil {
			return fmt.Errorf("current vote: %w", err)
		}

		tr = domain.ResolveVote(current, input.Direction)
		if err := s.votes.Apply(txCtx, input.Kind, input.TargetID, userID, tr); err != nil {
			return fmt.Errorf("apply vote: %w", err)
		}

		delta := s.rep.VoteDelta(input.Kind, tr)
		if err := s.users.AdjustReputation(txCtx, userID, delta.Actor); err != nil {
			return fmt.Errorf("voter reputation: %w", err)
		}
		if err := s.users.AdjustReputation(txCtx, authorID, delta.Author); err != nil {
			return fmt.Errorf("author reputation: %w", err)
		}

		summary, err = s.votes.Tally(txCtx, input.Kind, input.TargetID, userID)
		if err != nil {
			return fmt.Errorf("tally votes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vote applied",
		slog.String("user_id", userID.String()),
		slog.String("kind", input.Kind.String()),
		slog.String("target_id", input.TargetID.String()),
		slog.String("from", tr.From.String()),
		slog.String("to", tr.To.String()),
	)

	return &summary, nil
}

// GetVoteSummary returns the tally of a target. The viewer's own state is
// filled in when the request is authenticated.
func (s *Service) GetVoteSummary(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID) (*domain.VoteSummary, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be QUESTION or ANSWER")
	}

	if _, err := s.votes.TargetAuthor(ctx, kind, targetID); err != nil {
		return nil, fmt.Errorf("load target: %w", err)
	}

	summary, err := s.votes.Tally(ctx, kind, targetID, ctxutil.ViewerID(ctx))
	if err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}
	return &summary, nil
}
