package main

import (
	"context"
	"log/slog"
	"strings"

	"homeat/config"
	"homeat/internal/domain/entity"
	"homeat/internal/errors"
	"homeat/internal/infra/backend"
	"homeat/internal/infra/export"
	"homeat/internal/infra/favorites"
	logs "homeat/internal/infra/log"
	"homeat/internal/usecase"
	"homeat/internal/usecase/impl"

	"github.com/spf13/cobra"
	"gocloud.dev/blob"
)

// services is the set of use cases a command runs against.
type services struct {
	Recipes   usecase.RecipeUsecase
	Favorites usecase.FavoritesUsecase
	Shopping  usecase.ShoppingUsecase
	Logger    *slog.Logger

	close func() error
}

// Close releases the favorites bucket.
func (s *services) Close() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}

type servicesFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*services, error)

// openServices wires the same adapters and use cases the web server uses.
func openServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*services, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.Favorites.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open favorites bucket %q", cfg.Favorites.BucketURL)
	}

	client := backend.New(backend.Params{Config: cfg, Logger: logger})
	store := favorites.NewBlobStore(bucket, logger)

	recipes := impl.NewRecipeService(impl.RecipeServiceParams{
		RecipeRepo: client,
		ImageRepo:  client,
		Logger:     logger,
	})
	favs := impl.NewFavoritesService(impl.FavoritesServiceParams{
		Favorites: store,
		Likes:     client,
		Logger:    logger,
	})
	shopping := impl.NewShoppingService(impl.ShoppingServiceParams{
		Recipes:   recipes,
		Favorites: favs,
		Exporter:  export.NewXLSXExporter(),
		Logger:    logger,
	})

	return &services{
		Recipes:   recipes,
		Favorites: favs,
		Shopping:  shopping,
		Logger:    logger,
		close:     bucket.Close,
	}, nil
}

type globalOptions struct {
	backendURL string
	bucketURL  string
	owner      string
	name       string
	logLevel   string
}

// app carries the global flags into every subcommand.
type app struct {
	opts *globalOptions
	open servicesFactory
}

func newRootCmd(open servicesFactory) *cobra.Command {
	a := &app{opts: &globalOptions{}, open: open}

	root := &cobra.Command{
		Use:   "homeatctl",
		Short: "Manage HomEat recipes from the terminal",
		Long: `homeatctl talks to the same recipe backend and favorites store as the
HomEat web app. Commands that change recipes act as the identity given by --owner.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.backendURL, "backend", "", "recipe backend base URL (overrides backend.baseUrl)")
	flags.StringVar(&a.opts.bucketURL, "favorites", "", "favorites bucket URL, e.g. file:///path or mem:// (overrides favorites.bucketUrl)")
	flags.StringVar(&a.opts.owner, "owner", "", "identity subject to act as")
	flags.StringVar(&a.opts.name, "name", "", "display name used as review author")
	flags.StringVar(&a.opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		newRecipesCmd(a),
		newFavoritesCmd(a),
		newImagesCmd(a),
		newShoppingCmd(a),
	)

	return root
}

// identity is the caller as given on the command line. No --owner means anonymous.
func (a *app) identity() entity.Identity {
	subject := strings.TrimSpace(a.opts.owner)
	if subject == "" {
		return entity.Anonymous
	}

	return entity.Identity{
		Subject:       subject,
		Name:          strings.TrimSpace(a.opts.name),
		Authenticated: true,
	}
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	switch {
	case errors.Is(err, config.ErrNotFound):
		cfg = config.Defaults()
	case err != nil:
		return nil, err
	}

	if a.opts.backendURL != "" {
		cfg.Backend.BaseURL = strings.TrimRight(a.opts.backendURL, "/")
	}
	if a.opts.bucketURL != "" {
		cfg.Favorites.BucketURL = a.opts.bucketURL
	}
	cfg.Env.Log.Level = a.opts.logLevel
	cfg.Env.Log.Pretty = true

	return cfg, nil
}

// run opens the services for one command invocation and closes them afterwards.
func (a *app) run(fn func(cmd *cobra.Command, args []string, svc *services) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := a.loadConfig()
		if err != nil {
			return err
		}

		logger, err := logs.NewWithWriter(cmd.ErrOrStderr(), cfg.Env.Log)
		if err != nil {
			return err
		}

		svc, err := a.open(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := svc.Close(); closeErr != nil {
				logger.Warn("Failed to close favorites bucket", slog.Any("error", closeErr))
			}
		}()

		return fn(cmd, args, svc)
	}
}
