package domain

// TargetKind identifies what a vote is cast on.
type TargetKind string

const (
	TargetKindQuestion TargetKind = "QUESTION"
	TargetKindAnswer   TargetKind = "ANSWER"
)

func (k TargetKind) String() string { return string(k) }

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetKindQuestion, TargetKindAnswer:
		return true
	}
	return false
}

// VoteDirection is the state of one user's vote on one target.
// VoteNone is the absence of a vote and is never stored.
type VoteDirection string

const (
	VoteNone VoteDirection = ""
	VoteUp   VoteDirection = "UP"
	VoteDown VoteDirection = "DOWN"
)

func (d VoteDirection) String() string {
	if d == VoteNone {
		return "NONE"
	}
	return string(d)
}

// IsValid reports whether d is a direction a user can request.
func (d VoteDirection) IsValid() bool {
	switch d {
	case VoteUp, VoteDown:
		return true
	}
	return false
}

// InteractionAction is the kind of activity recorded in the interaction log.
type InteractionAction string

const (
	ActionAskQuestion InteractionAction = "ask_question"
	ActionAnswer      InteractionAction = "answer"
	ActionView        InteractionAction = "view"
)

func (a InteractionAction) String() string { return string(a) }

func (a InteractionAction) IsValid() bool {
	switch a {
	case ActionAskQuestion, ActionAnswer, ActionView:
		return true
	}
	return false
}

// QuestionSort orders question lists.
type QuestionSort string

const (
	QuestionSortNewest       QuestionSort = "newest"
	QuestionSortOldest       QuestionSort = "oldest"
	QuestionSortFrequent     QuestionSort = "frequent"
	QuestionSortUnanswered   QuestionSort = "unanswered"
	QuestionSortMostVoted    QuestionSort = "most_voted"
	QuestionSortMostAnswered QuestionSort = "most_answered"
	QuestionSortRecommended  QuestionSort = "recommended"
)

func (s QuestionSort) IsValid() bool {
	switch s {
	case QuestionSortNewest, QuestionSortOldest, QuestionSortFrequent, QuestionSortUnanswered,
		QuestionSortMostVoted, QuestionSortMostAnswered, QuestionSortRecommended:
		return true
	}
	return false
}

// AnswerSort orders the answers of a question.
type AnswerSort string

const (
	AnswerSortHighestUpvotes AnswerSort = "highest_upvotes"
	AnswerSortLowestUpvotes  AnswerSort = "lowest_upvotes"
	AnswerSortRecent         AnswerSort = "recent"
	AnswerSortOld            AnswerSort = "old"
)

func (s AnswerSort) IsValid() bool {
	switch s {
	case AnswerSortHighestUpvotes, AnswerSortLowestUpvotes, AnswerSortRecent, AnswerSortOld:
		return true
	}
	return false
}

// UserSort orders the community list.
type UserSort string

const (
	UserSortNewUsers        UserSort = "new_users"
	UserSortOldUsers        UserSort = "old_users"
	UserSortTopContributors UserSort = "top_contributors"
)

func (s UserSort) IsValid() bool {
	switch s {
	case UserSortNewUsers, UserSortOldUsers, UserSortTopContributors:
		return true
	}
	return false
}

// TagSort orders the tag list.
type TagSort string

const (
	TagSortPopular TagSort = "popular"
	TagSortRecent  TagSort = "recent"
	TagSortName    TagSort = "name"
	TagSortOld     TagSort = "old"
)

func (s TagSort) IsValid() bool {
	switch s {
	case TagSortPopular, TagSortRecent, TagSortName, TagSortOld:
		return true
	}
	return false
}

// SearchType restricts a global search to one kind of result.
type SearchType string

const (
	SearchTypeQuestion SearchType = "question"
	SearchTypeAnswer   SearchType = "answer"
	SearchTypeUser     SearchType = "user"
	SearchTypeTag      SearchType = "tag"
)

// SearchTypes lists every searchable type in result order.
var SearchTypes = []SearchType{SearchTypeQuestion, SearchTypeAnswer, SearchTypeUser, SearchTypeTag}

func (t SearchType) IsValid() bool {
	switch t {
	case SearchTypeQuestion, SearchTypeAnswer, SearchTypeUser, SearchTypeTag:
		return true
	}
	return false
}
