// Package auth supplies the bearer credential for remote sync calls. Token
// issuance itself is an external concern; this package only holds a token
// and refuses to hand out one that is already expired, so a doomed request
// never leaves the device.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nvoronin/calcsync/internal/syncerr"
)

//go:generate go tool moq -out token_mock.go . TokenSource

// TokenSource supplies the bearer credential attached to remote calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource holds a fixed token handed in at startup.
type StaticTokenSource struct {
	token string
	now   func() time.Time
}

// NewStaticTokenSource creates a token source around a fixed credential.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token, now: time.Now}
}

// Token returns the credential. When the token parses as a JWT with an exp
// claim in the past, an auth error is returned instead: retrying an invalid
// credential is pointless, so the caller must not queue the failure. Opaque
// (non-JWT) tokens are passed through untouched.
func (s *StaticTokenSource) Token(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", syncerr.New(syncerr.KindAuth, "no credential configured")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	// Signature verification happens server-side; this is only a local
	// expiry check on our own credential.
	if _, _, err := parser.ParseUnverified(s.token, claims); err != nil {
		return s.token, nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.token, nil
	}

	if s.now().After(exp.Time) {
		return "", syncerr.New(syncerr.KindAuth, "credential expired, re-authentication required")
	}

	return s.token, nil
}
