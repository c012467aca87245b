package domain

// VoteTransition is the change of one user's vote on one target.
type VoteTransition struct {
	From VoteDirection
	To   VoteDirection
}

// IsNoop reports whether the transition leaves the vote unchanged.
func (t VoteTransition) IsNoop() bool { return t.From == t.To }

// ResolveVote applies a vote request to the current state of a user's vote.
//
// Requesting the direction already held withdraws it; requesting the other
// direction switches; requesting from no vote casts. The result never holds
// both directions at once.
func ResolveVote(current, requested VoteDirection) VoteTransition {
	if current == requested {
		return VoteTransition{From: current, To: VoteNone}
	}
	return VoteTransition{From: current, To: requested}
}

// VoteSummary is the tally of a target after a vote, with the caller's own state.
type VoteSummary struct {
	Kind         TargetKind
	Upvotes      int
	Downvotes    int
	HasUpvoted   bool
	HasDownvoted bool
}
