// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/kevindev10/ecommerce-api/internal/delivery/http/middleware"
	"github.com/kevindev10/ecommerce-api/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	BusinessHandler *handler.BusinessHandler
	ProductHandler  *handler.ProductHandler
	UploadHandler   *handler.UploadHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	businessHandler *handler.BusinessHandler
	productHandler  *handler.ProductHandler
	uploadHandler   *handler.UploadHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		businessHandler: params.BusinessHandler,
		productHandler:  params.ProductHandler,
		uploadHandler:   params.UploadHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Email verification link, opened from the mail client
	e.GET("/verification", r.userHandler.VerifyEmail)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
	}

	// Business routes: reads are public, writes require ownership
	businessGroup := e.Group("/businesses")
	{
		businessGroup.GET("", r.businessHandler.List)
		businessGroup.GET("/:id", r.businessHandler.Get)
		businessGroup.PUT("/:id", r.businessHandler.Update, r.authMiddleware.Authenticate)
	}

	// Product routes: reads are public, writes require ownership
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.Authenticate)
	}

	// File uploads
	uploadGroup := e.Group("/uploadfile")
	uploadGroup.Use(r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("/profile", r.uploadHandler.UploadProfileLogo)
		uploadGroup.POST("/product/:id", r.uploadHandler.UploadProductImage)
	}
}
