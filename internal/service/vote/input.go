package vote

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// VoteInput is one vote request. Repeating the direction already held
// withdraws the vote.
type VoteInput struct {
	Kind      domain.TargetKind
	TargetID  uuid.UUID
	Direction domain.VoteDirection
}

// Validate checks all fields and collects all errors.
func (i VoteInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be QUESTION or ANSWER"})
	}
	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be UP or DOWN"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
