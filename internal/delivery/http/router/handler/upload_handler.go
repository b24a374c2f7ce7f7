package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kevindev10/ecommerce-api/internal/delivery/http/middleware"
	"github.com/kevindev10/ecommerce-api/internal/delivery/http/response"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

// UploadHandler holds dependencies for file upload handlers.
type UploadHandler struct {
	businessUC usecase.BusinessUsecase
	productUC  usecase.ProductUsecase
	logger     *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(businessUC usecase.BusinessUsecase, productUC usecase.ProductUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		businessUC: businessUC,
		productUC:  productUC,
		logger:     logger,
	}
}

// UploadProfileLogo stores a new logo for the caller's business.
func (h *UploadHandler) UploadProfileLogo(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	upload, closeFn, err := formUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeFn()

	business, err := h.businessUC.UploadLogo(c.Request().Context(), user.ID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessView(business), "Logo uploaded successfully")
}

// UploadProductImage stores a new image for a product owned by the caller.
func (h *UploadHandler) UploadProductImage(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	upload, closeFn, err := formUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeFn()

	product, err := h.productUC.UploadProductImage(c.Request().Context(), user.ID, id, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product image uploaded successfully")
}

// formUpload extracts the "file" part of a multipart form as an UploadInput.
func formUpload(c echo.Context) (*usecase.UploadInput, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WrapMessage("multipart form must carry a file field")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open uploaded file")
	}

	return &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: contentTypeOf(fileHeader),
		Size:        fileHeader.Size,
		Content:     src,
	}, func() { _ = src.Close() }, nil
}

func contentTypeOf(fileHeader *multipart.FileHeader) string {
	return fileHeader.Header.Get(echo.HeaderContentType)
}
