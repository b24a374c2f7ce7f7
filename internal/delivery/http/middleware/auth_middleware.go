package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

const currentUserKey = "currentUser"

// AuthMiddleware guards protected routes. It resolves the bearer token to a
// user and puts that user on the request context; handlers never touch
// tokens themselves.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate validates the Authorization header and loads the current user.
// Token failures surface as domain errors and are rendered by the error
// middleware (401 TOKEN_INVALID / TOKEN_EXPIRED / UNKNOWN_SUBJECT).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header must carry a bearer token")
		}

		user, err := m.auth.Resolve(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(currentUserKey, user)

		return next(c)
	}
}

// CurrentUser returns the user the auth middleware resolved for this request.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(currentUserKey).(*entity.User)
	if !ok || user == nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("no authenticated user on request")
	}

	return user, nil
}
