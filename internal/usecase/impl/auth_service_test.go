package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
)

func TestAuthenticateSuccess(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "ivy", "ivy@example.com", "s3cretpass")

	user, err := env.authUsecase.Authenticate(context.Background(), "ivy", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, user.ID)
}

func TestAuthenticateMissAndMismatchAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "judy", "judy@example.com", "s3cretpass")

	_, missErr := env.authUsecase.Authenticate(context.Background(), "nobody", "s3cretpass")
	require.Error(t, missErr)

	_, mismatchErr := env.authUsecase.Authenticate(context.Background(), "judy", "wrongpass")
	require.Error(t, mismatchErr)

	// Both failures carry the same domain error so a caller cannot probe
	// which usernames exist.
	assert.ErrorIs(t, missErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, mismatchErr, domainerrors.ErrInvalidCredentials)
}

func TestResolveValidToken(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "ken", "ken@example.com", "s3cretpass")

	token, err := env.tokens.IssueLoginToken(registered.User.ID, "ken")
	require.NoError(t, err)

	user, err := env.authUsecase.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, user.ID)
}

func TestResolveGarbageToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.authUsecase.Resolve(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestResolveDeletedSubject(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "liam", "liam@example.com", "s3cretpass")

	token, err := env.tokens.IssueLoginToken(registered.User.ID, "liam")
	require.NoError(t, err)

	env.users.delete(registered.User.ID)

	_, err = env.authUsecase.Resolve(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSubject)
}
