package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mrops-br/storefront-api/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret",
		Issuer:    "storefront-api",
		Audience:  "storefront-app",
		TokenTTL:  time.Hour,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testAuthConfig())

	raw, expires, err := m.Issue("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	subject, err := m.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager(testAuthConfig())
	issuedAt := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issuedAt }

	raw, _, err := m.Issue("user-1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsForeignTokens(t *testing.T) {
	m := NewTokenManager(testAuthConfig())

	t.Run("other secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTSecret = "other"
		raw, _, err := NewTokenManager(cfg).Issue("user-1")
		require.NoError(t, err)

		_, err = m.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other audience", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.Audience = "admin-console"
		raw, _, err := NewTokenManager(cfg).Issue("user-1")
		require.NoError(t, err)

		_, err = m.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
