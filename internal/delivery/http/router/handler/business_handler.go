package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kevindev10/ecommerce-api/internal/delivery/http/middleware"
	"github.com/kevindev10/ecommerce-api/internal/delivery/http/response"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

// BusinessHandler holds dependencies for business-related handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateBusinessRequest struct {
	Name        string `json:"business_name" validate:"required,max=50"`
	City        string `json:"city" validate:"required,max=100"`
	Region      string `json:"region" validate:"required,max=100"`
	Description string `json:"business_description" validate:"max=1000"`
}

// List returns all businesses with their products.
func (h *BusinessHandler) List(c echo.Context) error {
	businesses, err := h.uc.ListBusinesses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*businessView, 0, len(businesses))
	for _, business := range businesses {
		views = append(views, toBusinessView(business))
	}

	return response.Success(c, http.StatusOK, views, "Businesses retrieved successfully")
}

// Get returns a single business with its owner details.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"business": toBusinessView(output.Business),
		"owner":    toUserView(output.Owner),
	}, "Business retrieved successfully")
}

// Update replaces the editable fields of the caller's business.
func (h *BusinessHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.UpdateBusiness(c.Request().Context(), user.ID, id, &usecase.UpdateBusinessInput{
		Name:        req.Name,
		City:        req.City,
		Region:      req.Region,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessView(business), "Business updated successfully")
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("id must be a positive integer")
	}

	return id, nil
}
