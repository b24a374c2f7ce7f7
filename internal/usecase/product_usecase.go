package usecase

import (
	"context"
	"time"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
)

// ProductInput defines the data required to create or update a product.
// The percentage discount is always derived from the two prices, never
// taken from the caller.
type ProductInput struct {
	Name                string
	Category            string
	OriginalPrice       float64
	NewPrice            float64
	OfferExpirationDate time.Time
}

// ProductOutput returns a product together with its business and owner.
type ProductOutput struct {
	Product  *entity.Product
	Business *entity.Business
	Owner    *entity.User
}

// ProductUsecase defines the interface for product-related operations.
// Mutating operations are restricted to the user owning the product's business.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*ProductOutput, error)
	AddProduct(ctx context.Context, userID int64, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, userID, productID int64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, userID, productID int64) error
	UploadProductImage(ctx context.Context, userID, productID int64, upload *UploadInput) (*entity.Product, error)
}
