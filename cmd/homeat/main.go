package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"homeat/config"
	"homeat/internal/delivery"
	"homeat/internal/delivery/web"
	"homeat/internal/delivery/web/middleware"
	"homeat/internal/delivery/web/router/handler"
	"homeat/internal/domain/repository"
	"homeat/internal/domain/service"
	"homeat/internal/infra/auth"
	"homeat/internal/infra/backend"
	"homeat/internal/infra/export"
	"homeat/internal/infra/favorites"
	logs "homeat/internal/infra/log"
	"homeat/internal/infra/qrcode"
	"homeat/internal/usecase/impl"

	"go.uber.org/fx"
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				backend.New,
				fx.As(new(repository.RecipeRepository)),
				fx.As(new(repository.ImageRepository)),
				fx.As(new(repository.LikeRepository)),
			),
			favorites.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			newQRCodeService,
			export.NewXLSXExporter,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Links point at this server when no public URL is configured.
		return qrcode.NewQRCodeService(256, "M", "http://localhost:"+strconv.Itoa(cfg.HTTP.Port))
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRecipeService,
			impl.NewFavoritesService,
			impl.NewShoppingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRecipeHandler,
			handler.NewFavoriteHandler,
			handler.NewImageHandler,
			handler.NewShoppingHandler,
			handler.NewShareHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
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
