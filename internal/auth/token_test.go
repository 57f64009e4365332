package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoronin/calcsync/internal/syncerr"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenEmpty(t *testing.T) {
	source := NewStaticTokenSource("")

	_, err := source.Token(context.Background())
	require.Error(t, err)
	assert.True(t, syncerr.Is(err, syncerr.KindAuth))
}

func TestTokenOpaquePassthrough(t *testing.T) {
	source := NewStaticTokenSource("plain-api-key")

	token, err := source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "plain-api-key", token)
}

func TestTokenValidJWT(t *testing.T) {
	signed := signedToken(t, time.Now().Add(time.Hour))
	source := NewStaticTokenSource(signed)

	token, err := source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, signed, token)
}

func TestTokenExpiredJWT(t *testing.T) {
	source := NewStaticTokenSource(signedToken(t, time.Now().Add(-time.Hour)))

	_, err := source.Token(context.Background())
	require.Error(t, err)
	assert.True(t, syncerr.Is(err, syncerr.KindAuth))
}

func TestTokenExpiryBoundary(t *testing.T) {
	exp := time.Now().Add(30 * time.Second)
	source := NewStaticTokenSource(signedToken(t, exp))

	// Just before expiry the token is still handed out
	source.now = func() time.Time { return exp.Add(-time.Second) }
	_, err := source.Token(context.Background())
	assert.NoError(t, err)

	// Just after expiry it is refused
	source.now = func() time.Time { return exp.Add(2 * time.Second) }
	_, err = source.Token(context.Background())
	assert.True(t, syncerr.Is(err, syncerr.KindAuth))
}
