package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
	Upsert(ctx context.Context, u domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.UserProfileUpdate) (*domain.User, error)

	// Badge and profile counters
	CountQuestions(ctx context.Context, id uuid.UUID) (int, error)
	CountAnswers(ctx context.Context, id uuid.UUID) (int, error)
	QuestionUpvotes(ctx context.Context, id uuid.UUID) (int, error)
	AnswerUpvotes(ctx context.Context, id uuid.UUID) (int, error)
	QuestionViews(ctx context.Context, id uuid.UUID) (int, error)
}

// tagRepo defines the tag affinity source for user cards.
type tagRepo interface {
	InteractionCounts(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error)
}

// cascadeDeleter removes a user with everything they authored.
type cascadeDeleter interface {
	DeleteUser(ctx context.Context, id uuid.UUID) (domain.CascadeReport, error)
}

// tokenVerifier validates identity provider session tokens and returns the subject.
type tokenVerifier interface {
	Verify(token string) (string, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	// cardTopTags is the number of tags shown on a community user card.
	cardTopTags = 3
	// cardConcurrency bounds parallel tag lookups when building a page of cards.
	cardConcurrency = 4
)

// Service implements user identity sync, profiles and the community list.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tags     tagRepo
	cascade  cascadeDeleter
	verifier tokenVerifier
	tx       txManager
	badges   domain.BadgeThresholds
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tags tagRepo,
	cascade cascadeDeleter,
	verifier tokenVerifier,
	tx txManager,
	badges domain.BadgeThresholds,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		tags:     tags,
		cascade:  cascade,
		verifier: verifier,
		tx:       tx,
		badges:   badges,
	}
}
