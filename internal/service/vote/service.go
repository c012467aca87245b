// Package vote implements the vote engine: casting, switching and withdrawing
// votes on questions and answers, and the reputation changes they carry.
package vote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

type voteRepo interface {
	TargetAuthor(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID) (uuid.UUID, error)
	CurrentDirection(ctx context.Context, kind domain.TargetKind, targetID, userID uuid.UUID) (domain.VoteDirection, error)
	Apply(ctx context.Context, kind domain.TargetKind, targetID, userID uuid.UUID, tr domain.VoteTransition) error
	Tally(ctx context.Context, kind domain.TargetKind, targetID, userID uuid.UUID) (domain.VoteSummary, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	AdjustReputation(ctx context.Context, userID uuid.UUID, delta int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies votes and the reputation ledger entries they produce.
type Service struct {
	log   *slog.Logger
	votes voteRepo
	users userRepo
	tx    txManager
	rep   domain.ReputationTable
}

// NewService creates a new vote service.
func NewService(
	logger *slog.Logger,
	votes voteRepo,
	users userRepo,
	tx txManager,
	rep domain.ReputationTable,
) *Service {
	return &Service{
		log:   logger.With("service", "vote"),
		votes: votes,
		users: users,
		tx:    tx,
		rep:   rep,
	}
}
