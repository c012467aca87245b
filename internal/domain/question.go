package domain

import (
	"time"

	"github.com/google/uuid"
)

// Question is a user-authored question. Its tags are kept in order in question_tags.
type Question struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Content   string
	Views     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuestionSummary is the hydrated list item for question feeds.
type QuestionSummary struct {
	Question
	Author      UserRef
	Tags        []TagRef
	Upvotes     int
	Downvotes   int
	AnswerCount int
}

// ViewerState is the acting user's relation to a question or answer.
type ViewerState struct {
	Vote  VoteDirection
	Saved bool
}

// QuestionDetail is the hydrated single question view.
type QuestionDetail struct {
	QuestionSummary
	Viewer ViewerState
}

// QuestionFilter selects and orders a page of questions.
type QuestionFilter struct {
	Search string
	Sort   QuestionSort
	// TagIDs restricts results to questions carrying any of these tags.
	TagIDs []uuid.UUID
	// AuthorID restricts results to one author.
	AuthorID *uuid.UUID
	// SavedBy restricts results to one user's saved collection.
	SavedBy *uuid.UUID
	// ExcludeAuthorID drops one author's questions (recommendations).
	ExcludeAuthorID *uuid.UUID
	Page            PageParams
}
