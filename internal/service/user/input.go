package user

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/techflow-backend/internal/auth"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change, empty = clear).
type UpdateProfileInput struct {
	Name             *string
	Username         *string
	Bio              *string
	Location         *string
	PortfolioWebsite *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if n := strings.TrimSpace(*i.Name); n == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if utf8.RuneCountInString(n) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Username != nil {
		if n := strings.TrimSpace(*i.Username); n == "" {
			errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
		} else if utf8.RuneCountInString(n) > 50 {
			errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
		}
	}

	if i.Bio != nil && utf8.RuneCountInString(*i.Bio) > 150 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "max 150 characters"})
	}

	if i.Location != nil && utf8.RuneCountInString(*i.Location) > 50 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "max 50 characters"})
	}

	if i.PortfolioWebsite != nil && *i.PortfolioWebsite != "" && !isURL(*i.PortfolioWebsite) {
		errs = append(errs, domain.FieldError{Field: "portfolio_website", Message: "must be a URL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) toUpdate() domain.UserProfileUpdate {
	return domain.UserProfileUpdate{
		Name:             trimmed(i.Name),
		Username:         trimmed(i.Username),
		Bio:              trimmed(i.Bio),
		Location:         trimmed(i.Location),
		PortfolioWebsite: trimmed(i.PortfolioWebsite),
	}
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// validateIdentity checks what a synced user needs locally.
func validateIdentity(id auth.Identity) error {
	var errs []domain.FieldError
	if id.Subject == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if id.Username == "" && id.Email == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "username or email required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListUsersInput selects a page of the community list.
type ListUsersInput struct {
	Search string
	Sort   domain.UserSort
	Page   domain.PageParams
}

// Validate checks the sort key; an empty sort lists newest members first.
func (i ListUsersInput) Validate() error {
	if i.Sort != "" && !i.Sort.IsValid() {
		return domain.NewValidationError("sort", "unknown sort")
	}
	return nil
}
