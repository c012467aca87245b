package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Webhook signature headers of the identity provider's delivery service.
const (
	HeaderWebhookID        = "svix-id"
	HeaderWebhookTimestamp = "svix-timestamp"
	HeaderWebhookSignature = "svix-signature"

	secretPrefix = "whsec_"
)

// ErrInvalidSignature is returned for webhook deliveries that fail verification.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookVerifier checks HMAC-SHA256 signatures of identity webhooks. The
// signed content is "<id>.<timestamp>.<body>"; the signature header holds
// space-separated "v1,<base64>" entries, any of which may match.
type WebhookVerifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewWebhookVerifier creates a verifier from a "whsec_" base64 secret. A
// secret without the prefix is used as raw bytes.
func NewWebhookVerifier(secret string, tolerance time.Duration) (*WebhookVerifier, error) {
	key := []byte(secret)
	if strings.HasPrefix(secret, secretPrefix) {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
		if err != nil {
			return nil, fmt.Errorf("decode webhook secret: %w", err)
		}
		key = decoded
	}
	if len(key) == 0 {
		return nil, errors.New("identity: webhook secret required")
	}
	return &WebhookVerifier{secret: key, tolerance: tolerance, now: time.Now}, nil
}

// Verify checks the signature headers of a delivery against its raw body.
func (v *WebhookVerifier) Verify(h http.Header, body []byte) error {
	id := h.Get(HeaderWebhookID)
	ts := h.Get(HeaderWebhookTimestamp)
	sigs := h.Get(HeaderWebhookSignature)
	if id == "" || ts == "" || sigs == "" {
		return fmt.Errorf("%w: missing headers", ErrInvalidSignature)
	}

	sec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp", ErrInvalidSignature)
	}
	age := v.now().Sub(time.Unix(sec, 0))
	if age > v.tolerance || age < -v.tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
	}

	expected := v.Sign(id, sec, body)
	for _, entry := range strings.Fields(sigs) {
		version, sig, ok := strings.Cut(entry, ",")
		if !ok || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

// Sign returns the base64 v1 signature of a delivery.
func (v *WebhookVerifier) Sign(id string, timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	fmt.Fprintf(mac, "%s.%d.", id, timestamp)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
