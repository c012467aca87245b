package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer belongs to exactly one question.
type Answer struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	AuthorID   uuid.UUID
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AnswerSummary is the hydrated answer list item.
type AnswerSummary struct {
	Answer
	Author    UserRef
	Upvotes   int
	Downvotes int
}

// AnswerWithQuestion is an answer listed on its author's profile.
type AnswerWithQuestion struct {
	AnswerSummary
	QuestionTitle string
}

// AnswerFilter selects and orders a page of answers.
type AnswerFilter struct {
	QuestionID *uuid.UUID
	AuthorID   *uuid.UUID
	Sort       AnswerSort
	Page       PageParams
}
