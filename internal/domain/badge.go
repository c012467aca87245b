package domain

// BadgeCriteriaType names a per-user counter that earns badges.
type BadgeCriteriaType string

const (
	CriteriaQuestionCount   BadgeCriteriaType = "QUESTION_COUNT"
	CriteriaAnswerCount     BadgeCriteriaType = "ANSWER_COUNT"
	CriteriaQuestionUpvotes BadgeCriteriaType = "QUESTION_UPVOTES"
	CriteriaAnswerUpvotes   BadgeCriteriaType = "ANSWER_UPVOTES"
	CriteriaTotalViews      BadgeCriteriaType = "TOTAL_VIEWS"
)

// BadgeCriterion is one counter value to evaluate.
type BadgeCriterion struct {
	Type  BadgeCriteriaType
	Count int
}

// TierThresholds are the minimum counts for each tier; Bronze <= Silver <= Gold.
type TierThresholds struct {
	Bronze int
	Silver int
	Gold   int
}

// BadgeThresholds maps each criterion to its tier thresholds.
type BadgeThresholds map[BadgeCriteriaType]TierThresholds

// DefaultBadgeThresholds returns the stock badge table.
func DefaultBadgeThresholds() BadgeThresholds {
	counts := TierThresholds{Bronze: 10, Silver: 50, Gold: 100}
	return BadgeThresholds{
		CriteriaQuestionCount:   counts,
		CriteriaAnswerCount:     counts,
		CriteriaQuestionUpvotes: counts,
		CriteriaAnswerUpvotes:   counts,
		CriteriaTotalViews:      {Bronze: 1000, Silver: 10000, Gold: 100000},
	}
}

// BadgeCounts is the number of badges held per tier.
type BadgeCounts struct {
	Gold   int
	Silver int
	Bronze int
}

// Total is the number of badges across all tiers.
func (c BadgeCounts) Total() int { return c.Gold + c.Silver + c.Bronze }

// AssignBadges counts badges for criteria. Every threshold a criterion meets
// earns one badge of that tier, so a count past the silver threshold earns both
// a bronze and a silver badge. Criteria without thresholds earn nothing.
func AssignBadges(criteria []BadgeCriterion, thresholds BadgeThresholds) BadgeCounts {
	var counts BadgeCounts
	for _, c := range criteria {
		th, ok := thresholds[c.Type]
		if !ok {
			continue
		}
		if c.Count >= th.Bronze {
			counts.Bronze++
		}
		if c.Count >= th.Silver {
			counts.Silver++
		}
		if c.Count >= th.Gold {
			counts.Gold++
		}
	}
	return counts
}

// BadgeCriteria derives the badge criteria of a user from their stats.
func (s UserStats) BadgeCriteria() []BadgeCriterion {
	return []BadgeCriterion{
		{Type: CriteriaQuestionCount, Count: s.TotalQuestions},
		{Type: CriteriaAnswerCount, Count: s.TotalAnswers},
		{Type: CriteriaQuestionUpvotes, Count: s.QuestionUpvotes},
		{Type: CriteriaAnswerUpvotes, Count: s.AnswerUpvotes},
		{Type: CriteriaTotalViews, Count: s.QuestionViews},
	}
}
