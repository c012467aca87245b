// Package edenai is a client for the Eden AI text generation aggregator.
package edenai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.edenai.run"
	generationPath = "/v2/text/generation"
	maxErrorBody   = 512
)

// ErrProviderFailed is returned when no requested provider produced text.
var ErrProviderFailed = errors.New("edenai: provider failed")

// ProviderConfig selects the upstream models and sampling for one request.
type ProviderConfig struct {
	Providers   []string
	Temperature float64
	MaxTokens   int
}

// Provider calls the aggregator's text generation endpoint. Outbound
// requests are rate limited.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Eden AI URL.
// rps <= 0 disables rate limiting.
func NewProvider(apiKey string, timeout time.Duration, rps float64, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, apiKey, timeout, rps, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey string, timeout time.Duration, rps float64, logger *slog.Logger) *Provider {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		log:        logger.With("adapter", "edenai"),
	}
}

// GenerateText sends prompt to the configured providers and returns the text
// of the first one, in cfg order, that succeeded.
func (p *Provider) GenerateText(ctx context.Context, cfg ProviderConfig, prompt string) (string, error) {
	if len(cfg.Providers) == 0 {
		return "", errors.New("edenai: no providers configured")
	}

	body, err := json.Marshal(generationRequest{
		Providers:   strings.Join(cfg.Providers, ","),
		Text:        prompt,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("edenai: encode request: %w", err)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("edenai: rate limit: %w", err)
	}

	p.log.DebugContext(ctx, "edenai request",
		slog.String("providers", strings.Join(cfg.Providers, ",")),
		slog.Int("prompt_len", len(prompt)),
	)

	start := time.Now()
	resp, err := p.doWithRetry(ctx, body)
	if err != nil {
		p.log.ErrorContext(ctx, "edenai request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("edenai: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("edenai: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var results map[string]providerResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("edenai: decode json: %w", err)
	}

	text, err := pickResult(cfg.Providers, results)
	if err != nil {
		return "", err
	}

	p.log.DebugContext(ctx, "edenai response",
		slog.Int("status", resp.StatusCode),
		slog.Int("text_len", len(text)),
		slog.Duration("duration", time.Since(start)),
	)
	return text, nil
}

// pickResult returns the first successful, non-empty generation in provider order.
func pickResult(providers []string, results map[string]providerResult) (string, error) {
	var reasons []string
	for _, name := range providers {
		r, ok := results[name]
		switch {
		case !ok:
			reasons = append(reasons, name+": missing from response")
		case r.Status != statusSuccess:
			msg := r.Status
			if r.Error != nil && r.Error.Message != "" {
				msg = r.Error.Message
			}
			reasons = append(reasons, name+": "+msg)
		case strings.TrimSpace(r.GeneratedText) == "":
			reasons = append(reasons, name+": empty text")
		default:
			return r.GeneratedText, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrProviderFailed, strings.Join(reasons, "; "))
}

func (p *Provider) newRequest(ctx context.Context, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+generationPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	return req, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := p.newRequest(ctx, body)
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "edenai retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	req, err = p.newRequest(ctx, body)
	if err != nil {
		return nil, err
	}
	return p.httpClient.Do(req)
}
