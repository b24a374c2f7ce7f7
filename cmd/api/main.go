package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/kevindev10/ecommerce-api/config"
	"github.com/kevindev10/ecommerce-api/internal/delivery"
	"github.com/kevindev10/ecommerce-api/internal/delivery/http"
	"github.com/kevindev10/ecommerce-api/internal/delivery/http/middleware"
	"github.com/kevindev10/ecommerce-api/internal/delivery/http/router/handler"
	"github.com/kevindev10/ecommerce-api/internal/infra/auth"
	"github.com/kevindev10/ecommerce-api/internal/infra/image"
	logs "github.com/kevindev10/ecommerce-api/internal/infra/log"
	"github.com/kevindev10/ecommerce-api/internal/infra/mail"
	"github.com/kevindev10/ecommerce-api/internal/infra/persistence/postgres"
	"github.com/kevindev10/ecommerce-api/internal/infra/qrcode"
	"github.com/kevindev10/ecommerce-api/internal/infra/storage"
	"github.com/kevindev10/ecommerce-api/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBusinessRepository,
			postgres.NewProductRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			mail.NewSMTPSender,
			storage.NewBlobStore,
			image.NewResizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewBusinessService,
			impl.NewProductService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewBusinessHandler,
			handler.NewProductHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
