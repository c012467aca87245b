package domain

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one entry of a user's activity log. Tags are copied from the
// question at the time of the interaction and drive tag affinity.
type Interaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Action     InteractionAction
	QuestionID *uuid.UUID
	AnswerID   *uuid.UUID
	TagIDs     []uuid.UUID
	CreatedAt  time.Time
}
