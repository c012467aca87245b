package domain

// CascadeReport counts the rows removed by a cascade delete, per relation.
type CascadeReport struct {
	Users        int64
	Questions    int64
	Answers      int64
	Votes        int64
	Saves        int64
	Interactions int64
	TagLinks     int64
	Follows      int64
}

// Add accumulates other into r.
func (r *CascadeReport) Add(other CascadeReport) {
	r.Users += other.Users
	r.Questions += other.Questions
	r.Answers += other.Answers
	r.Votes += other.Votes
	r.Saves += other.Saves
	r.Interactions += other.Interactions
	r.TagLinks += other.TagLinks
	r.Follows += other.Follows
}
