package question

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

const (
	minTitleLen   = 5
	maxTitleLen   = 130
	minContentLen = 20
	minTags       = 1
	maxTags       = 3
	minTagLen     = 2
	maxTagLen     = 15
)

// CreateQuestionInput holds the parameters for asking a question.
type CreateQuestionInput struct {
	Title   string
	Content string
	Tags    []string
}

// Validate checks all fields and collects all errors. Tags are counted after
// case-insensitive de-duplication.
func (i CreateQuestionInput) Validate() error {
	errs := validateText(i.Title, i.Content)

	tags := domain.DedupeTagNames(i.Tags)
	switch {
	case len(tags) < minTags:
		errs = append(errs, domain.FieldError{Field: "tags", Message: "at least 1 tag required"})
	case len(tags) > maxTags:
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 3 tags"})
	}
	for _, t := range tags {
		if n := utf8.RuneCountInString(t); n < minTagLen || n > maxTagLen {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "each tag must be 2-15 characters"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditQuestionInput holds the parameters for editing a question. Tags are
// fixed once the question is asked.
type EditQuestionInput struct {
	QuestionID uuid.UUID
	Title      string
	Content    string
}

// Validate checks all fields and collects all errors.
func (i EditQuestionInput) Validate() error {
	errs := validateText(i.Title, i.Content)
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(title, content string) []domain.FieldError {
	var errs []domain.FieldError

	if n := utf8.RuneCountInString(strings.TrimSpace(title)); n < minTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "min 5 characters"})
	} else if n > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 130 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(content)) < minContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "min 20 characters"})
	}
	return errs
}

// ListQuestionsInput selects a page of questions.
type ListQuestionsInput struct {
	Search string
	Sort   domain.QuestionSort
	Page   domain.PageParams
}

// Validate checks the sort key; an empty sort means newest first.
func (i ListQuestionsInput) Validate() error {
	if i.Sort != "" && !i.Sort.IsValid() {
		return domain.NewValidationError("sort", "unknown sort")
	}
	return nil
}
