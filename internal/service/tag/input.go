package tag

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// ListTagsInput selects a page of tags.
type ListTagsInput struct {
	Search string
	Sort   domain.TagSort
	Page   domain.PageParams
}

// Validate checks the sort key; an empty sort means most popular first.
func (i ListTagsInput) Validate() error {
	if i.Sort != "" && !i.Sort.IsValid() {
		return domain.NewValidationError("sort", "unknown sort")
	}
	return nil
}

// TagQuestionsInput selects a page of the questions carrying one tag.
type TagQuestionsInput struct {
	TagID  uuid.UUID
	Search string
	Page   domain.PageParams
}
