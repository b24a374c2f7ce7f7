package usecase

import (
	"context"
	"io"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
)

// UpdateBusinessInput defines the editable fields of a business.
type UpdateBusinessInput struct {
	Name        string
	City        string
	Region      string
	Description string
}

// UploadInput carries an uploaded file stream and its metadata.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// BusinessOutput returns a business together with its owner's public info.
type BusinessOutput struct {
	Business *entity.Business
	Owner    *entity.User
}

// BusinessUsecase defines the interface for business-related operations.
type BusinessUsecase interface {
	ListBusinesses(ctx context.Context) ([]*entity.Business, error)
	GetBusiness(ctx context.Context, id int64) (*BusinessOutput, error)
	UpdateBusiness(ctx context.Context, userID, businessID int64, input *UpdateBusinessInput) (*entity.Business, error)
	UploadLogo(ctx context.Context, userID int64, upload *UploadInput) (*entity.Business, error)
}
