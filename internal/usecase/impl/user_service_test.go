package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

func TestRegisterCreatesUserAndBusinessInOneTransaction(t *testing.T) {
	env := newTestEnv(t)

	out := registerTestUser(t, env, "alice", "alice@example.com", "s3cretpass")

	assert.Equal(t, 1, env.txManager.executions)
	assert.Equal(t, "alice", out.User.Username)
	assert.False(t, out.User.Verified)
	assert.NotEqual(t, "s3cretpass", out.User.PasswordHash)

	business, err := env.businesses.FindByOwnerID(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", business.Name)
	assert.Equal(t, entity.DefaultLogo, business.Logo)
	assert.Equal(t, "Unspecified", business.City)
	assert.Equal(t, "Unspecified", business.Region)
}

func TestRegisterSendsVerificationMailWithResolvableToken(t *testing.T) {
	env := newTestEnv(t)

	out := registerTestUser(t, env, "bob", "bob@example.com", "s3cretpass")

	require.Len(t, env.mail.sent, 1)
	assert.Equal(t, "bob@example.com", env.mail.sent[0].email)

	claims, err := env.tokens.Verify(env.mail.sent[0].token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "bob@example.com", claims.Email)
}

func TestRegisterSucceedsWhenMailFails(t *testing.T) {
	env := newTestEnv(t)
	env.mail.err = errors.New("smtp unreachable")

	out := registerTestUser(t, env, "carol", "carol@example.com", "s3cretpass")

	_, err := env.users.FindByID(context.Background(), out.User.ID)
	assert.NoError(t, err)
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "dave", "dave@example.com", "s3cretpass")

	out, err := env.userUsecase.Login(context.Background(), &usecase.LoginInput{
		Username: "dave",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	resolved, err := env.authUsecase.Resolve(context.Background(), out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resolved.ID)
	assert.Equal(t, "dave", resolved.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "erin", "erin@example.com", "s3cretpass")

	_, err := env.userUsecase.Login(context.Background(), &usecase.LoginInput{
		Username: "erin",
		Password: "wrongpass",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestVerifyEmailFlipsVerifiedOnce(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "frank", "frank@example.com", "s3cretpass")
	require.Len(t, env.mail.sent, 1)
	token := env.mail.sent[0].token

	user, err := env.userUsecase.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, user.Verified)
	assert.Equal(t, 1, env.users.updateCount)

	// Consuming the same token again is a no-op success.
	user, err = env.userUsecase.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, user.Verified)
	assert.Equal(t, 1, env.users.updateCount)
}

func TestVerifyEmailRejectsTamperedToken(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "grace", "grace@example.com", "s3cretpass")
	token := env.mail.sent[0].token

	_, err := env.userUsecase.VerifyEmail(context.Background(), token+"x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Zero(t, env.users.updateCount)
}

func TestGetProfileReturnsUserWithBusiness(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "heidi", "heidi@example.com", "s3cretpass")

	profile, err := env.userUsecase.GetProfile(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "heidi", profile.User.Username)
	assert.Equal(t, registered.Business.ID, profile.Business.ID)
}

func TestGetProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.userUsecase.GetProfile(context.Background(), 4242)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
