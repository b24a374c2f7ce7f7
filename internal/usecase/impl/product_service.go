package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/kevindev10/ecommerce-api/config"
	deliverycontext "github.com/kevindev10/ecommerce-api/internal/delivery/context"
	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/domain/repository"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	uploader     *imageUploader
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo    repository.ProductRepository
	BusinessRepo   repository.BusinessRepository
	UserRepo       repository.UserRepository
	ImageProcessor service.ImageProcessor
	FileStore      service.FileStore
	Config         *config.Config
	Logger         *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		businessRepo: params.BusinessRepo,
		userRepo:     params.UserRepo,
		uploader:     newImageUploader(params.ImageProcessor, params.FileStore, params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns all products.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a product together with its business and owner details.
func (srv *productService) GetProduct(ctx context.Context, id int64) (*usecase.ProductOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	business, err := srv.businessRepo.FindByID(ctx, product.BusinessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product business")
	}

	owner, err := srv.userRepo.FindByID(ctx, business.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product owner")
	}

	return &usecase.ProductOutput{Product: product, Business: business, Owner: owner}, nil
}

// AddProduct creates a product under the caller's own business. The
// percentage discount is derived from the two prices, never taken from input.
func (srv *productService) AddProduct(ctx context.Context, userID int64, input *usecase.ProductInput) (*entity.Product, error) {
	business, err := srv.businessRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("user has no business")
		}

		return nil, errors.Wrap(err, "failed to find business for product creation")
	}

	product := &entity.Product{
		Name:                input.Name,
		Category:            input.Category,
		OriginalPrice:       input.OriginalPrice,
		NewPrice:            input.NewPrice,
		OfferExpirationDate: input.OfferExpirationDate,
		Image:               entity.DefaultProductImage,
		BusinessID:          business.ID,
	}
	product.RecalculateDiscount()

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.Int64("businessID", business.ID))

	return product, nil
}

// UpdateProduct replaces the editable fields of a product owned by the caller
// and recomputes the discount.
func (srv *productService) UpdateProduct(ctx context.Context, userID, productID int64, input *usecase.ProductInput) (*entity.Product, error) {
	product, _, err := srv.loadOwnedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Category = input.Category
	product.OriginalPrice = input.OriginalPrice
	product.NewPrice = input.NewPrice
	product.OfferExpirationDate = input.OfferExpirationDate
	product.RecalculateDiscount()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Debug("Product updated", slog.Int64("productID", product.ID))

	return product, nil
}

// DeleteProduct removes a product owned by the caller. Its stored image is
// deleted as well unless it is the shared default.
func (srv *productService) DeleteProduct(ctx context.Context, userID, productID int64) error {
	product, _, err := srv.loadOwnedProduct(ctx, userID, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, product.ID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	if err := srv.uploader.deleteStoredImage(ctx, product.Image, entity.DefaultProductImage); err != nil {
		srv.log(ctx).Warn("Failed to delete product image", slog.String("image", product.Image), slog.Any("error", err))
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", product.ID))

	return nil
}

// UploadProductImage stores a new image for a product owned by the caller and
// removes the previous one unless it is the shared default.
func (srv *productService) UploadProductImage(ctx context.Context, userID, productID int64, upload *usecase.UploadInput) (*entity.Product, error) {
	product, _, err := srv.loadOwnedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	filename, err := srv.uploader.storeImage(ctx, upload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store product image")
	}

	previousImage := product.Image
	product.Image = filename

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to persist product image")
	}

	if err := srv.uploader.deleteStoredImage(ctx, previousImage, entity.DefaultProductImage); err != nil {
		srv.log(ctx).Warn("Failed to delete previous product image", slog.String("image", previousImage), slog.Any("error", err))
	}

	srv.log(ctx).Info("Product image updated", slog.Int64("productID", product.ID), slog.String("image", filename))

	return product, nil
}

// loadOwnedProduct loads a product and checks that the caller owns the
// business it belongs to.
func (srv *productService) loadOwnedProduct(ctx context.Context, userID, productID int64) (*entity.Product, *entity.Business, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil, domainerrors.ErrProductNotFound.WrapMessage("product not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find product")
	}

	business, err := srv.businessRepo.FindByID(ctx, product.BusinessID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find product business")
	}

	if business.OwnerID != userID {
		srv.log(ctx).Warn("Product operation denied", slog.Int64("userID", userID), slog.Int64("productID", productID))

		return nil, nil, domainerrors.ErrOwnershipViolation.WrapMessage("product belongs to another user's business")
	}

	return product, business, nil
}
