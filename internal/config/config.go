package config

import (
	"strings"
	"time"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Identity   IdentityConfig   `yaml:"identity"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Reputation ReputationConfig `yaml:"reputation"`
	Pagination PaginationConfig `yaml:"pagination"`
	Assistant  AssistantConfig  `yaml:"assistant"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// IdentityConfig describes the external identity provider. Session tokens are
// verified with either an HMAC secret or an RSA public key (PEM).
type IdentityConfig struct {
	JWTSecret     string `yaml:"jwt_secret"     env:"IDENTITY_JWT_SECRET"`
	JWTPublicKey  string `yaml:"jwt_public_key" env:"IDENTITY_JWT_PUBLIC_KEY"`
	Issuer        string `yaml:"issuer"         env:"IDENTITY_ISSUER"`
	Audience      string `yaml:"audience"       env:"IDENTITY_AUDIENCE"`
	WebhookSecret string `yaml:"webhook_secret" env:"IDENTITY_WEBHOOK_SECRET" env-required:"true"`
	// WebhookTolerance bounds the age of a signed webhook delivery.
	WebhookTolerance time.Duration `yaml:"webhook_tolerance" env:"IDENTITY_WEBHOOK_TOLERANCE" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds inbound per-client rate limiting.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int  `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	Burst             int  `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"30"`
}

// ReputationConfig is the reputation table. Author values are magnitudes.
type ReputationConfig struct {
	QuestionAsked         int `yaml:"question_asked"          env:"REPUTATION_QUESTION_ASKED"          env-default:"5"`
	AuthorUpvote          int `yaml:"author_upvote"           env:"REPUTATION_AUTHOR_UPVOTE"           env-default:"10"`
	AuthorDownvote        int `yaml:"author_downvote"         env:"REPUTATION_AUTHOR_DOWNVOTE"         env-default:"10"`
	QuestionVoterUpvote   int `yaml:"question_voter_upvote"   env:"REPUTATION_QUESTION_VOTER_UPVOTE"   env-default:"1"`
	QuestionVoterDownvote int `yaml:"question_voter_downvote" env:"REPUTATION_QUESTION_VOTER_DOWNVOTE" env-default:"1"`
	AnswerVoterUpvote     int `yaml:"answer_voter_upvote"     env:"REPUTATION_ANSWER_VOTER_UPVOTE"     env-default:"2"`
	AnswerVoterDownvote   int `yaml:"answer_voter_downvote"   env:"REPUTATION_ANSWER_VOTER_DOWNVOTE"   env-default:"2"`
}

// Table converts the configuration into the domain reputation table.
func (c ReputationConfig) Table() domain.ReputationTable {
	return domain.ReputationTable{
		QuestionAsked:         c.QuestionAsked,
		AuthorUpvote:          c.AuthorUpvote,
		AuthorDownvote:        c.AuthorDownvote,
		QuestionVoterUpvote:   c.QuestionVoterUpvote,
		QuestionVoterDownvote: c.QuestionVoterDownvote,
		AnswerVoterUpvote:     c.AnswerVoterUpvote,
		AnswerVoterDownvote:   c.AnswerVoterDownvote,
	}
}

// PaginationConfig holds list defaults.
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"PAGINATION_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"PAGINATION_MAX_PAGE_SIZE"     env-default:"100"`
	PopularTags     int `yaml:"popular_tags"      env:"PAGINATION_POPULAR_TAGS"      env-default:"5"`
}

// AssistantConfig configures the AI text-generation aggregator.
type AssistantConfig struct {
	BaseURL           string        `yaml:"base_url"            env:"ASSISTANT_BASE_URL"            env-default:"https://api.edenai.run"`
	APIKey            string        `yaml:"api_key"             env:"ASSISTANT_API_KEY"`
	Providers         string        `yaml:"providers"           env:"ASSISTANT_PROVIDERS"           env-default:"openai"`
	Temperature       float64       `yaml:"temperature"         env:"ASSISTANT_TEMPERATURE"         env-default:"0.2"`
	MaxTokens         int           `yaml:"max_tokens"          env:"ASSISTANT_MAX_TOKENS"          env-default:"500"`
	Timeout           time.Duration `yaml:"timeout"             env:"ASSISTANT_TIMEOUT"             env-default:"30s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"ASSISTANT_REQUESTS_PER_SECOND" env-default:"2"`
}

// Enabled reports whether the assistant has credentials.
func (c AssistantConfig) Enabled() bool { return c.APIKey != "" }

// ProviderList splits the comma-separated provider names.
func (c AssistantConfig) ProviderList() []string {
	var out []string
	for _, p := range strings.Split(c.Providers, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
