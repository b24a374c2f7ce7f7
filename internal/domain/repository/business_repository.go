package repository

import (
	"context"
	"errors"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for business persistence.
type BusinessRepository interface {
	// FindByID retrieves a single business by its ID, with its products.
	FindByID(ctx context.Context, id int64) (*entity.Business, error)

	// FindByOwnerID retrieves the business owned by the given user.
	FindByOwnerID(ctx context.Context, ownerID int64) (*entity.Business, error)

	// List retrieves all businesses with their products.
	List(ctx context.Context) ([]*entity.Business, error)

	// Create persists a new business entity to the storage.
	Create(ctx context.Context, business *entity.Business) error

	// Update modifies an existing business entity in the storage.
	Update(ctx context.Context, business *entity.Business) error
}
