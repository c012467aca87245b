package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// leeway absorbs clock skew between the identity provider and this service.
const leeway = 30 * time.Second

// Verifier validates session tokens issued by the identity provider. Tokens
// are signed either with a shared HMAC secret or with the provider's RSA key.
type Verifier struct {
	hmacSecret []byte
	publicKey  *rsa.PublicKey
	parser     *jwt.Parser
}

// NewVerifier creates a verifier. When publicKeyPEM is set it takes precedence
// over secret and only RS256 tokens are accepted. Empty issuer or audience
// disables that check.
func NewVerifier(secret, publicKeyPEM, issuer, audience string) (*Verifier, error) {
	v := &Verifier{}
	opts := []jwt.ParserOption{jwt.WithExpirationRequired(), jwt.WithLeeway(leeway)}

	switch {
	case publicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse identity public key: %w", err)
		}
		v.publicKey = key
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	case secret != "":
		v.hmacSecret = []byte(secret)
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	default:
		return nil, errors.New("identity: jwt secret or public key required")
	}

	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	v.parser = jwt.NewParser(opts...)
	return v, nil
}

// Verify parses and validates a token and returns its subject, the user's
// id at the identity provider.
func (v *Verifier) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token is empty")
	}

	var claims jwt.RegisteredClaims
	token, err := v.parser.ParseWithClaims(tokenString, &claims, v.key)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

func (v *Verifier) key(*jwt.Token) (any, error) {
	if v.publicKey != nil {
		return v.publicKey, nil
	}
	return v.hmacSecret, nil
}
