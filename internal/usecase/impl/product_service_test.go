package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

func addTestProduct(t *testing.T, env *testEnv, userID int64, original, newPrice float64) *entity.Product {
	t.Helper()

	product, err := env.productUsecase.AddProduct(context.Background(), userID, &usecase.ProductInput{
		Name:                "Blender",
		Category:            "Kitchen",
		OriginalPrice:       original,
		NewPrice:            newPrice,
		OfferExpirationDate: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	return product
}

func TestAddProductDerivesDiscount(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "tina", "tina@example.com", "s3cretpass")

	product := addTestProduct(t, env, registered.User.ID, 100, 80)

	assert.InDelta(t, 20, product.PercentageDiscount, 0.001)
	assert.Equal(t, entity.DefaultProductImage, product.Image)
	assert.Equal(t, registered.Business.ID, product.BusinessID)
}

func TestAddProductZeroOriginalPrice(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "uma", "uma@example.com", "s3cretpass")

	product := addTestProduct(t, env, registered.User.ID, 0, 0)

	assert.Zero(t, product.PercentageDiscount)
}

func TestAddProductWithoutBusiness(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.productUsecase.AddProduct(context.Background(), 777, &usecase.ProductInput{Name: "Orphan"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestUpdateProductRecomputesDiscount(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "vera", "vera@example.com", "s3cretpass")
	product := addTestProduct(t, env, registered.User.ID, 100, 80)

	updated, err := env.productUsecase.UpdateProduct(context.Background(), registered.User.ID, product.ID, &usecase.ProductInput{
		Name:          "Blender Pro",
		Category:      "Kitchen",
		OriginalPrice: 200,
		NewPrice:      150,
	})
	require.NoError(t, err)
	assert.InDelta(t, 25, updated.PercentageDiscount, 0.001)
	assert.Equal(t, "Blender Pro", updated.Name)
}

func TestUpdateProductByNonOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env, "walt", "walt@example.com", "s3cretpass")
	intruder := registerTestUser(t, env, "xena", "xena@example.com", "s3cretpass")
	product := addTestProduct(t, env, owner.User.ID, 100, 80)

	_, err := env.productUsecase.UpdateProduct(context.Background(), intruder.User.ID, product.ID, &usecase.ProductInput{Name: "Hijacked"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestDeleteProductByOwner(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "yara", "yara@example.com", "s3cretpass")
	product := addTestProduct(t, env, registered.User.ID, 100, 80)

	require.NoError(t, env.productUsecase.DeleteProduct(context.Background(), registered.User.ID, product.ID))

	_, err := env.products.FindByID(context.Background(), product.ID)
	assert.Error(t, err)
}

func TestDeleteProductByNonOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env, "zack", "zack@example.com", "s3cretpass")
	intruder := registerTestUser(t, env, "abby", "abby@example.com", "s3cretpass")
	product := addTestProduct(t, env, owner.User.ID, 100, 80)

	err := env.productUsecase.DeleteProduct(context.Background(), intruder.User.ID, product.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)

	_, findErr := env.products.FindByID(context.Background(), product.ID)
	assert.NoError(t, findErr)
}

func TestDeleteMissingProduct(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "bela", "bela@example.com", "s3cretpass")

	err := env.productUsecase.DeleteProduct(context.Background(), registered.User.ID, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestUploadProductImage(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "cleo", "cleo@example.com", "s3cretpass")
	product := addTestProduct(t, env, registered.User.ID, 100, 80)

	updated, err := env.productUsecase.UploadProductImage(context.Background(), registered.User.ID, product.ID, &usecase.UploadInput{
		Filename: "photo.jpg",
		Size:     9,
		Content:  strings.NewReader("jpg bytes"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, entity.DefaultProductImage, updated.Image)
	assert.True(t, strings.HasSuffix(updated.Image, ".jpg"))
	assert.Contains(t, env.store.saved, updated.Image)
}

func TestUploadProductImageTooLarge(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "dora", "dora@example.com", "s3cretpass")
	product := addTestProduct(t, env, registered.User.ID, 100, 80)

	_, err := env.productUsecase.UploadProductImage(context.Background(), registered.User.ID, product.ID, &usecase.UploadInput{
		Filename: "huge.png",
		Size:     (5 << 20) + 1,
		Content:  strings.NewReader("pretend this is huge"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)
}

func TestGetProductWithBusinessAndOwner(t *testing.T) {
	env := newTestEnv(t)
	registered := registerTestUser(t, env, "elsa", "elsa@example.com", "s3cretpass")
	product := addTestProduct(t, env, registered.User.ID, 100, 80)

	out, err := env.productUsecase.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, out.Product.ID)
	assert.Equal(t, registered.Business.ID, out.Business.ID)
	assert.Equal(t, registered.User.ID, out.Owner.ID)
}
