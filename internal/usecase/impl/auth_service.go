// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/kevindev10/ecommerce-api/internal/delivery/context"
	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/domain/repository"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate checks a username/password pair against the stored hash.
// A username miss and a password mismatch both return ErrInvalidCredentials
// so a caller cannot probe which usernames exist.
func (srv *authService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Authentication failed", slog.String("username", username))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
	}

	return user, nil
}

// Resolve verifies a bearer token and loads the user it names. A token whose
// subject no longer exists yields ErrUnknownSubject. Resolve never mutates state.
func (srv *authService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token subject no longer exists", slog.Int64("userID", claims.UserID))

			return nil, domainerrors.ErrUnknownSubject.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
