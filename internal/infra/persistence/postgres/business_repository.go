package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/domain/repository"
	"github.com/kevindev10/ecommerce-api/internal/infra/persistence/model"
)

// businessRepository implements the domain.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByID retrieves a single business by its ID, preloading its products.
func (repo *businessRepository) FindByID(ctx context.Context, id int64) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).Preload("Products").First(&businessM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByOwnerID retrieves the business owned by the given user.
func (repo *businessRepository) FindByOwnerID(ctx context.Context, ownerID int64) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).Preload("Products").Where("owner_id = ?", ownerID).First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner id")
	}

	return toBusinessDomain(&businessM), nil
}

// List retrieves all businesses with their products.
func (repo *businessRepository) List(ctx context.Context) ([]*entity.Business, error) {
	var businessMs []model.BusinessModel
	if err := repo.db.WithContext(ctx).Preload("Products").Find(&businessMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessMs))
	for i := range businessMs {
		businesses = append(businesses, toBusinessDomain(&businessMs[i]))
	}

	return businesses, nil
}

// Create persists a new business entity to the database.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("business owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID

	return nil
}

// Update modifies an existing business entity in the database.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Omit("Products").Save(businessM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update business")
	}

	return nil
}

// --- Mapper Functions ---

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	products := make([]*entity.Product, 0, len(data.Products))
	for i := range data.Products {
		products = append(products, toProductDomain(&data.Products[i]))
	}

	return &entity.Business{
		ID:          data.ID,
		Name:        data.Name,
		City:        data.City,
		Region:      data.Region,
		Description: data.Description,
		Logo:        data.Logo,
		OwnerID:     data.OwnerID,
		Products:    products,
	}
}

func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:          data.ID,
		Name:        data.Name,
		City:        data.City,
		Region:      data.Region,
		Description: data.Description,
		Logo:        data.Logo,
		OwnerID:     data.OwnerID,
	}
}
