package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevindev10/ecommerce-api/config"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
)

const testSecret = "test_signing_secret_key_very_long_for_testing"

func newTestTokenService(t *testing.T, authCfg *config.AuthConfig) service.TokenService {
	t.Helper()

	cfg := &config.Config{Auth: authCfg}
	cfg.SecretKey.Signing = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerifyLoginToken(t *testing.T) {
	svc := newTestTokenService(t, nil)

	token, err := svc.IssueLoginToken(42, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Empty(t, claims.Email)

	// No TTL configured: the token carries no expiry claim and stays valid.
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTService_IssueAndVerifyVerificationToken(t *testing.T) {
	svc := newTestTokenService(t, nil)

	token, err := svc.IssueVerificationToken(7, "alice@x.com")
	assert.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Empty(t, claims.Username)
}

func TestJWTService_ConfiguredTTLSetsExpiry(t *testing.T) {
	svc := newTestTokenService(t, &config.AuthConfig{AccessTokenTTL: time.Hour})

	token, err := svc.IssueLoginToken(1, "alice")
	assert.NoError(t, err)

	// Well before the expiry the token is accepted.
	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, nil)

	// Craft a token with an expiry in the past, signed with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	svc := newTestTokenService(t, nil)

	sign := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		return signed
	}

	// Comfortably before expiry: accepted.
	_, err := svc.Verify(sign(time.Now().Add(time.Minute)))
	assert.NoError(t, err)

	// After expiry: rejected as expired.
	_, err = svc.Verify(sign(time.Now().Add(-time.Second)))
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := newTestTokenService(t, nil)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{UserID: 1})
	tokenString, err := other.SignedString([]byte("a-completely-different-secret"))
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_TamperedTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, nil)

	token, err := svc.IssueLoginToken(42, "alice")
	require.NoError(t, err)

	claims, err := svc.Verify(token + "tampered")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_MalformedTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, nil)

	for _, malformed := range []string{"", "clearly-not-a-jwt", "a.b", "a.b.c.d"} {
		claims, err := svc.Verify(malformed)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid), "token %q", malformed)
	}
}

func TestJWTService_UnexpectedSigningMethodRejected(t *testing.T) {
	svc := newTestTokenService(t, nil)

	// alg=none tokens must never be accepted.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{UserID: 1})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "signing secret")
}
