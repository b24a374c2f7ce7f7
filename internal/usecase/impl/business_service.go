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

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	uploader     *imageUploader
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo   repository.BusinessRepository
	UserRepo       repository.UserRepository
	ImageProcessor service.ImageProcessor
	FileStore      service.FileStore
	Config         *config.Config
	Logger         *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		userRepo:     params.UserRepo,
		uploader:     newImageUploader(params.ImageProcessor, params.FileStore, params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBusinesses returns all businesses with their products.
func (srv *businessService) ListBusinesses(ctx context.Context) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// GetBusiness returns a single business together with its owner's public info.
func (srv *businessService) GetBusiness(ctx context.Context, id int64) (*usecase.BusinessOutput, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business not found")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	owner, err := srv.userRepo.FindByID(ctx, business.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business owner")
	}

	return &usecase.BusinessOutput{Business: business, Owner: owner}, nil
}

// UpdateBusiness replaces the editable fields of a business. Only the owning
// user may update it.
func (srv *businessService) UpdateBusiness(ctx context.Context, userID, businessID int64, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business not found")
		}

		return nil, errors.Wrap(err, "failed to find business for update")
	}

	if business.OwnerID != userID {
		srv.log(ctx).Warn("Business update denied", slog.Int64("userID", userID), slog.Int64("businessID", businessID))

		return nil, domainerrors.ErrOwnershipViolation.WrapMessage("business belongs to another user")
	}

	business.Name = input.Name
	business.City = input.City
	business.Region = input.Region
	business.Description = input.Description

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	srv.log(ctx).Debug("Business updated", slog.Int64("businessID", business.ID))

	return business, nil
}

// UploadLogo stores a new logo for the user's own business and removes the
// previous one unless it is the shared default.
func (srv *businessService) UploadLogo(ctx context.Context, userID int64, upload *usecase.UploadInput) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("user has no business")
		}

		return nil, errors.Wrap(err, "failed to find business for logo upload")
	}

	filename, err := srv.uploader.storeImage(ctx, upload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store business logo")
	}

	previousLogo := business.Logo
	business.Logo = filename

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to persist business logo")
	}

	if err := srv.uploader.deleteStoredImage(ctx, previousLogo, entity.DefaultLogo); err != nil {
		srv.log(ctx).Warn("Failed to delete previous logo", slog.String("logo", previousLogo), slog.Any("error", err))
	}

	srv.log(ctx).Info("Business logo updated", slog.Int64("businessID", business.ID), slog.String("logo", filename))

	return business, nil
}
