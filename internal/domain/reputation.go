package domain

// ReputationTable holds every reputation constant in one place. Author values
// are magnitudes: an upvote adds AuthorUpvote, a downvote subtracts AuthorDownvote.
type ReputationTable struct {
	QuestionAsked int

	AuthorUpvote   int
	AuthorDownvote int

	QuestionVoterUpvote   int
	QuestionVoterDownvote int
	AnswerVoterUpvote     int
	AnswerVoterDownvote   int
}

// DefaultReputationTable returns the stock reputation economy.
func DefaultReputationTable() ReputationTable {
	return ReputationTable{
		QuestionAsked:         5,
		AuthorUpvote:          10,
		AuthorDownvote:        10,
		QuestionVoterUpvote:   1,
		QuestionVoterDownvote: 1,
		AnswerVoterUpvote:     2,
		AnswerVoterDownvote:   2,
	}
}

// ReputationDelta is the change applied to the voter (Actor) and to the
// author of the voted content (Author).
type ReputationDelta struct {
	Actor  int
	Author int
}

// IsZero reports whether the delta changes nobody's reputation.
func (d ReputationDelta) IsZero() bool { return d.Actor == 0 && d.Author == 0 }

// QuestionAskedDelta is the author's reward for asking a question.
func (t ReputationTable) QuestionAskedDelta() ReputationDelta {
	return ReputationDelta{Author: t.QuestionAsked}
}

// VoteDelta is the reputation change of a vote transition: the standing
// contribution of the old vote is withdrawn and that of the new vote applied.
// VoteDelta(k, {a, b}) is always the exact negation of VoteDelta(k, {b, a}).
func (t ReputationTable) VoteDelta(kind TargetKind, tr VoteTransition) ReputationDelta {
	from := t.standing(kind, tr.From)
	to := t.standing(kind, tr.To)
	return ReputationDelta{
		Actor:  to.Actor - from.Actor,
		Author: to.Author - from.Author,
	}
}

// standing is the reputation a single held vote contributes.
func (t ReputationTable) standing(kind TargetKind, dir VoteDirection) ReputationDelta {
	switch dir {
	case VoteUp:
		return ReputationDelta{Actor: t.voterUpvote(kind), Author: t.AuthorUpvote}
	case VoteDown:
		return ReputationDelta{Actor: t.voterDownvote(kind), Author: -t.AuthorDownvote}
	}
	return ReputationDelta{}
}

func (t ReputationTable) voterUpvote(kind TargetKind) int {
	if kind == TargetKindAnswer {
		return t.AnswerVoterUpvote
	}
	return t.QuestionVoterUpvote
}

func (t ReputationTable) voterDownvote(kind TargetKind) int {
	if kind == TargetKindAnswer {
		return t.AnswerVoterDownvote
	}
	return t.QuestionVoterDownvote
}
