package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/auth"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// ValidateToken resolves an identity provider session token to the local
// user id. Users the webhook has not synced yet are unauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	subject, err := s.verifier.Verify(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	u, err := s.users.GetByExternalID(ctx, subject)
	if errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("%w: user %s not synced", domain.ErrUnauthorized, subject)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("user.ValidateToken: %w", err)
	}
	return u.ID, nil
}

// SyncUser creates or refreshes the local copy of an identity provider user.
// Reputation and profile fields edited locally are kept. Usernames are unique
// case-insensitively; when the provider's username (or the email local part)
// is taken by another user, it gets a suffix derived from the subject.
func (s *Service) SyncUser(ctx context.Context, id auth.Identity) (*domain.User, error) {
	if err := validateIdentity(id); err != nil {
		return nil, err
	}

	username := id.Username
	if username == "" {
		username, _, _ = strings.Cut(id.Email, "@")
	}
	name := id.Name
	if name == "" {
		name = username
	}

	user := domain.User{
		ExternalID: id.Subject,
		Name:       name,
		Username:   username,
		Email:      id.Email,
		AvatarURL:  id.AvatarURL,
	}
	u, err := s.users.Upsert(ctx, user)
	if errors.Is(err, domain.ErrAlreadyExists) {
		user.Username = disambiguateUsername(username, id.Subject)
		s.log.WarnContext(ctx, "username taken, using suffixed username",
			slog.String("external_id", id.Subject),
			slog.String("username", user.Username),
		)
		u, err = s.users.Upsert(ctx, user)
	}
	if err != nil {
		return nil, fmt.Errorf("user.SyncUser: %w", err)
	}

	s.log.InfoContext(ctx, "user synced",
		slog.String("user_id", u.ID.String()),
		slog.String("external_id", id.Subject),
	)
	return u, nil
}

// usernameSuffixLen is the number of subject characters appended to a taken
// username.
const usernameSuffixLen = 8

// disambiguateUsername appends the last alphanumeric characters of the
// subject to username. The result is stable for a subject, so later syncs of
// the same user resolve to the same name.
func disambiguateUsername(username, subject string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(subject) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	suffix := b.String()
	if len(suffix) > usernameSuffixLen {
		suffix = suffix[len(suffix)-usernameSuffixLen:]
	}
	return username + "_" + suffix
}

// DeleteUser removes a user with all authored content and activity.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) (domain.CascadeReport, error) {
	report, err := s.cascade.DeleteUser(ctx, userID)
	if err != nil {
		return domain.CascadeReport{}, fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("questions", report.Questions),
		slog.Int64("answers", report.Answers),
		slog.Int64("votes", report.Votes),
	)
	return report, nil
}

// DeleteUserByExternalID deletes the local user of an identity provider
// subject. The lookup and the cascade share one transaction.
func (s *Service) DeleteUserByExternalID(ctx context.Context, externalID string) (domain.CascadeReport, error) {
	var report domain.CascadeReport
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByExternalID(txCtx, externalID)
		if err != nil {
			return fmt.Errorf("user.DeleteUserByExternalID: %w", err)
		}
		report, err = s.DeleteUser(txCtx, u.ID)
		return err
	})
	return report, err
}
