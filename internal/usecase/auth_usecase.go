package usecase

import (
	"context"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
)

// AuthUsecase authenticates credentials and resolves bearer tokens to users.
//
// Authenticate performs the exact-username lookup followed by the password
// check. A missing username and a wrong password are indistinguishable to
// the caller, both return ErrInvalidCredentials.
//
// Resolve is the single gate for protected endpoints: it verifies the token
// and loads the user it names. It never mutates state.
type AuthUsecase interface {
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
	Resolve(ctx context.Context, token string) (*entity.User, error)
}
