package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Identity.validate(); err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	if err := c.Reputation.validate(); err != nil {
		return fmt.Errorf("reputation: %w", err)
	}

	if err := c.Pagination.validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Assistant.Enabled() && len(c.Assistant.ProviderList()) == 0 {
		return fmt.Errorf("assistant.providers must name at least one provider")
	}

	return nil
}

func (c *IdentityConfig) validate() error {
	if c.JWTSecret == "" && c.JWTPublicKey == "" {
		return fmt.Errorf("one of jwt_secret or jwt_public_key is required")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(c.JWTSecret))
	}
	if c.WebhookTolerance <= 0 {
		return fmt.Errorf("webhook_tolerance must be > 0 (got %s)", c.WebhookTolerance)
	}
	return nil
}

func (c *ReputationConfig) validate() error {
	values := map[string]int{
		"question_asked":          c.QuestionAsked,
		"author_upvote":           c.AuthorUpvote,
		"author_downvote":         c.AuthorDownvote,
		"question_voter_upvote":   c.QuestionVoterUpvote,
		"question_voter_downvote": c.QuestionVoterDownvote,
		"answer_voter_upvote":     c.AnswerVoterUpvote,
		"answer_voter_downvote":   c.AnswerVoterDownvote,
	}
	for name, v := range values {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", name, v)
		}
	}
	return nil
}

func (c *PaginationConfig) validate() error {
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.PopularTags <= 0 {
		return fmt.Errorf("popular_tags must be > 0 (got %d)", c.PopularTags)
	}
	return nil
}
