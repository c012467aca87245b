package assistant

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// MaxQuestionLength bounds the prompt sent upstream, in characters.
const MaxQuestionLength = 5000

// GenerateAnswerInput holds the question to draft an answer for.
type GenerateAnswerInput struct {
	Question string
}

// Validate requires a non-blank question of bounded length.
func (i GenerateAnswerInput) Validate() error {
	q := strings.TrimSpace(i.Question)
	if q == "" {
		return domain.NewValidationError("question", "required")
	}
	if utf8.RuneCountInString(q) > MaxQuestionLength {
		return domain.NewValidationError("question", "too long")
	}
	return nil
}
