package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Tag is a case-insensitively unique label on questions.
type Tag struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// TagRef is the lightweight tag projection embedded in other views.
type TagRef struct {
	ID   uuid.UUID
	Name string
}

// TagCount is a tag with the number of items attributed to it: questions
// for popularity, interactions for a user's activity.
type TagCount struct {
	Tag
	Count int
}

// TagFilter selects and orders a page of tags.
type TagFilter struct {
	Search string
	Sort   TagSort
	Page   PageParams
}

// RankTagCounts orders counts by count descending, breaking ties by creation
// order, and truncates to limit. limit <= 0 keeps every entry. The input is not modified.
func RankTagCounts(counts []TagCount, limit int) []TagCount {
	ranked := slices.Clone(counts)
	slices.SortStableFunc(ranked, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		return []TagCount{}
	}
	return ranked
}
