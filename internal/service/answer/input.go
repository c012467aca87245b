package answer

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

const minContentLen = 50

// CreateAnswerInput holds the parameters for answering a question.
type CreateAnswerInput struct {
	QuestionID uuid.UUID
	Content    string
}

// Validate checks all fields and collects all errors.
func (i CreateAnswerInput) Validate() error {
	var errs []domain.FieldError
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Content)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditAnswerInput holds the parameters for editing an answer.
type EditAnswerInput struct {
	AnswerID uuid.UUID
	Content  string
}

// Validate checks all fields and collects all errors.
func (i EditAnswerInput) Validate() error {
	var errs []domain.FieldError
	if i.AnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answer_id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Content)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateContent(content string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(content)) < minContentLen {
		return []domain.FieldError{{Field: "content", Message: "min 50 characters"}}
	}
	return nil
}

// ListAnswersInput selects a page of one question's answers.
type ListAnswersInput struct {
	QuestionID uuid.UUID
	Sort       domain.AnswerSort
	Page       domain.PageParams
}

// Validate checks the sort key; an empty sort means most recent first.
func (i ListAnswersInput) Validate() error {
	if i.Sort != "" && !i.Sort.IsValid() {
		return domain.NewValidationError("sort", "unknown sort")
	}
	return nil
}
