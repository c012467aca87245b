package tag

import "github.com/heartmarshall/techflow-backend/internal/domain"

// TagQuestions is a tag page: the tag and a page of its questions, newest first.
type TagQuestions struct {
	Tag       domain.Tag
	Followers int
	Questions domain.Page[domain.QuestionSummary]
}
