package domain

// SearchHit is one global search result. ID is what the caller navigates to:
// the question for question and answer hits, the external id for users.
type SearchHit struct {
	Type  SearchType
	ID    string
	Title string
}

// Global search result limits.
const (
	SearchLimitPerType = 2
	SearchLimitSingle  = 8
)
