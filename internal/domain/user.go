package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a community member. ExternalID is the subject assigned by the
// identity provider; ID is the local primary key every relation points at.
type User struct {
	ID               uuid.UUID
	ExternalID       string
	Name             string
	Username         string
	Email            string
	AvatarURL        string
	Bio              *string
	Location         *string
	PortfolioWebsite *string
	Reputation       int
	JoinedAt         time.Time
}

// UserRef is the author projection embedded in question and answer views.
type UserRef struct {
	ID         uuid.UUID
	ExternalID string
	Name       string
	Username   string
	AvatarURL  string
}

// Ref returns the author projection of u.
func (u User) Ref() UserRef {
	return UserRef{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Name:       u.Name,
		Username:   u.Username,
		AvatarURL:  u.AvatarURL,
	}
}

// UserProfileUpdate carries the editable profile fields; nil leaves a field unchanged.
type UserProfileUpdate struct {
	Name             *string
	Username         *string
	Bio              *string
	Location         *string
	PortfolioWebsite *string
}

// UserCard is a user with the tags they are most active in, shown on the community page.
type UserCard struct {
	User
	TopTags []TagRef
}

// UserStats are the aggregate counters behind the profile page and badge criteria.
type UserStats struct {
	TotalQuestions  int
	TotalAnswers    int
	QuestionUpvotes int
	AnswerUpvotes   int
	QuestionViews   int
}

// UserInfo is the profile page payload.
type UserInfo struct {
	User
	UserStats
	Badges BadgeCounts
}

// UserFilter selects and orders a page of the community list.
type UserFilter struct {
	Search string
	Sort   UserSort
	Page   PageParams
}
