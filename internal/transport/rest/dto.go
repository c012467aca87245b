package rest

import (
	"time"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/tag"
)

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type pageResponse[T any] struct {
	Items  []T  `json:"items"`
	Total  int  `json:"total"`
	IsNext bool `json:"isNext"`
}

func toPage[S, T any](p domain.Page[S], conv func(S) T) pageResponse[T] {
	items := make([]T, len(p.Items))
	for i, it := range p.Items {
		items[i] = conv(it)
	}
	return pageResponse[T]{Items: items, Total: p.Total, IsNext: p.IsNext}
}

type userRefResponse struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

type tagRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type questionResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Views       int              `json:"views"`
	Upvotes     int              `json:"upvotes"`
	Downvotes   int              `json:"downvotes"`
	AnswerCount int              `json:"answerCount"`
	Author      *userRefResponse `json:"author,omitempty"`
	Tags        []tagRefResponse `json:"tags"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Viewer      *viewerResponse  `json:"viewer,omitempty"`
}

type viewerResponse struct {
	Vote  string `json:"vote"`
	Saved bool   `json:"saved"`
}

type answerResponse struct {
	ID            string           `json:"id"`
	QuestionID    string           `json:"questionId"`
	QuestionTitle string           `json:"questionTitle,omitempty"`
	Content       string           `json:"content"`
	Upvotes       int              `json:"upvotes"`
	Downvotes     int              `json:"downvotes"`
	Author        *userRefResponse `json:"author,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type voteSummaryResponse struct {
	Upvotes      int  `json:"upvotes"`
	Downvotes    int  `json:"downvotes"`
	HasUpvoted   bool `json:"hasUpvoted"`
	HasDownvoted bool `json:"hasDownvoted"`
}

type tagResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Count       int       `json:"count"`
	CreatedAt   time.Time `json:"createdAt"`
}

type tagQuestionsResponse struct {
	Tag       tagResponse                    `json:"tag"`
	Followers int                            `json:"followers"`
	Questions pageResponse[questionResponse] `json:"questions"`
}

type userResponse struct {
	ID               string           `json:"id"`
	ExternalID       string           `json:"externalId"`
	Name             string           `json:"name"`
	Username         string           `json:"username"`
	Email            string           `json:"email,omitempty"`
	AvatarURL        string           `json:"avatarUrl,omitempty"`
	Bio              *string          `json:"bio,omitempty"`
	Location         *string          `json:"location,omitempty"`
	PortfolioWebsite *string          `json:"portfolioWebsite,omitempty"`
	Reputation       int              `json:"reputation"`
	JoinedAt         time.Time        `json:"joinedAt"`
	TopTags          []tagRefResponse `json:"topTags,omitempty"`
}

type userStatsResponse struct {
	TotalQuestions  int `json:"totalQuestions"`
	TotalAnswers    int `json:"totalAnswers"`
	QuestionUpvotes int `json:"questionUpvotes"`
	AnswerUpvotes   int `json:"answerUpvotes"`
	QuestionViews   int `json:"questionViews"`
}

type badgeCountsResponse struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
}

type userInfoResponse struct {
	User   userResponse        `json:"user"`
	Stats  userStatsResponse   `json:"stats"`
	Badges badgeCountsResponse `json:"badges"`
}

type cascadeReportResponse struct {
	Questions    int64 `json:"questions"`
	Answers      int64 `json:"answers"`
	Votes        int64 `json:"votes"`
	Saves        int64 `json:"saves"`
	Interactions int64 `json:"interactions"`
	TagLinks     int64 `json:"tagLinks"`
	Follows      int64 `json:"follows"`
	Users        int64 `json:"users"`
}

type searchHitResponse struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toUserRef(u domain.UserRef) *userRefResponse {
	return &userRefResponse{
		ID:         u.ID.String(),
		ExternalID: u.ExternalID,
		Name:       u.Name,
		Username:   u.Username,
		AvatarURL:  u.AvatarURL,
	}
}

func toTagRefs(tags []domain.TagRef) []tagRefResponse {
	out := make([]tagRefResponse, len(tags))
	for i, t := range tags {
		out[i] = tagRefResponse{ID: t.ID.String(), Name: t.Name}
	}
	return out
}

func toQuestion(q domain.Question) questionResponse {
	return questionResponse{
		ID:        q.ID.String(),
		Title:     q.Title,
		Content:   q.Content,
		Views:     q.Views,
		Tags:      []tagRefResponse{},
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func toQuestionSummary(q domain.QuestionSummary) questionResponse {
	resp := toQuestion(q.Question)
	resp.Upvotes = q.Upvotes
	resp.Downvotes = q.Downvotes
	resp.AnswerCount = q.AnswerCount
	resp.Author = toUserRef(q.Author)
	resp.Tags = toTagRefs(q.Tags)
	return resp
}

func toQuestionDetail(q domain.QuestionDetail) questionResponse {
	resp := toQuestionSummary(q.QuestionSummary)
	resp.Viewer = &viewerResponse{Vote: q.Viewer.Vote.String(), Saved: q.Viewer.Saved}
	return resp
}

func toAnswer(a domain.Answer) answerResponse {
	return answerResponse{
		ID:         a.ID.String(),
		QuestionID: a.QuestionID.String(),
		Content:    a.Content,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toAnswerSummary(a domain.AnswerSummary) answerResponse {
	resp := toAnswer(a.Answer)
	resp.Upvotes = a.Upvotes
	resp.Downvotes = a.Downvotes
	resp.Author = toUserRef(a.Author)
	return resp
}

func toAnswerWithQuestion(a domain.AnswerWithQuestion) answerResponse {
	resp := toAnswerSummary(a.AnswerSummary)
	resp.QuestionTitle = a.QuestionTitle
	return resp
}

func toVoteSummary(v *domain.VoteSummary) voteSummaryResponse {
	return voteSummaryResponse{
		Upvotes:      v.Upvotes,
		Downvotes:    v.Downvotes,
		HasUpvoted:   v.HasUpvoted,
		HasDownvoted: v.HasDownvoted,
	}
}

func toTagCount(t domain.TagCount) tagResponse {
	return tagResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		Count:       t.Count,
		CreatedAt:   t.CreatedAt,
	}
}

func toTagCounts(tags []domain.TagCount) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i, t := range tags {
		out[i] = toTagCount(t)
	}
	return out
}

func toTagQuestions(r *tag.TagQuestions) tagQuestionsResponse {
	return tagQuestionsResponse{
		Tag:       toTagCount(domain.TagCount{Tag: r.Tag, Count: r.Questions.Total}),
		Followers: r.Followers,
		Questions: toPage(r.Questions, toQuestionSummary),
	}
}

// toUser maps a user; the email is only included on the user's own profile.
func toUser(u domain.User, self bool) userResponse {
	resp := userResponse{
		ID:               u.ID.String(),
		ExternalID:       u.ExternalID,
		Name:             u.Name,
		Username:         u.Username,
		AvatarURL:        u.AvatarURL,
		Bio:              u.Bio,
		Location:         u.Location,
		PortfolioWebsite: u.PortfolioWebsite,
		Reputation:       u.Reputation,
		JoinedAt:         u.JoinedAt,
	}
	if self {
		resp.Email = u.Email
	}
	return resp
}

func toUserCard(c domain.UserCard) userResponse {
	resp := toUser(c.User, false)
	resp.TopTags = toTagRefs(c.TopTags)
	return resp
}

func toUserInfo(info *domain.UserInfo) userInfoResponse {
	return userInfoResponse{
		User: toUser(info.User, false),
		Stats: userStatsResponse{
			TotalQuestions:  info.TotalQuestions,
			TotalAnswers:    info.TotalAnswers,
			QuestionUpvotes: info.QuestionUpvotes,
			AnswerUpvotes:   info.AnswerUpvotes,
			QuestionViews:   info.QuestionViews,
		},
		Badges: badgeCountsResponse{Gold: info.Badges.Gold, Silver: info.Badges.Silver, Bronze: info.Badges.Bronze},
	}
}

func toCascadeReport(r domain.CascadeReport) cascadeReportResponse {
	return cascadeReportResponse{
		Questions:    r.Questions,
		Answers:      r.Answers,
		Votes:        r.Votes,
		Saves:        r.Saves,
		Interactions: r.Interactions,
		TagLinks:     r.TagLinks,
		Follows:      r.Follows,
		Users:        r.Users,
	}
}

func toSearchHits(hits []domain.SearchHit) []searchHitResponse {
	out := make([]searchHitResponse, len(hits))
	for i, h := range hits {
		out[i] = searchHitResponse{Type: string(h.Type), ID: h.ID, Title: h.Title}
	}
	return out
}
