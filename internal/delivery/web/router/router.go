// Package router registers the web client's routes.
package router

import (
	"homeat/internal/delivery/web/middleware"
	"homeat/internal/delivery/web/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecipeHandler      *handler.RecipeHandler
	FavoriteHandler    *handler.FavoriteHandler
	ImageHandler       *handler.ImageHandler
	ShoppingHandler    *handler.ShoppingHandler
	ShareHandler       *handler.ShareHandler
	AuthHandler        *handler.AuthHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	recipeHandler      *handler.RecipeHandler
	favoriteHandler    *handler.FavoriteHandler
	imageHandler       *handler.ImageHandler
	shoppingHandler    *handler.ShoppingHandler
	shareHandler       *handler.ShareHandler
	authHandler        *handler.AuthHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		recipeHandler:      params.RecipeHandler,
		favoriteHandler:    params.FavoriteHandler,
		imageHandler:       params.ImageHandler,
		shoppingHandler:    params.ShoppingHandler,
		shareHandler:       params.ShareHandler,
		authHandler:        params.AuthHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all routes. Every page resolves the identity; pages
// render for anonymous visitors, mutations require a signed-in user.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	site := e.Group("", r.identityMiddleware.Resolve)
	{
		site.GET("/", r.recipeHandler.List)
		site.GET("/recipes", r.recipeHandler.List)
		site.POST("/recipes", r.recipeHandler.Submit)
		site.GET("/recipes/:id/qr", r.shareHandler.RecipeQR)
		site.GET("/shopping", r.shoppingHandler.Show)
		site.GET("/shopping.xlsx", r.shoppingHandler.Export)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/session", r.authHandler.CreateSession)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Route-level rather than a sub-group: a group registers its own catch-all,
	// which would turn unknown URLs into 401s for anonymous visitors.
	requireIdentity := r.identityMiddleware.RequireIdentity
	site.GET("/recipes/:id/edit", r.recipeHandler.Edit, requireIdentity)
	site.POST("/recipes/:id", r.recipeHandler.Update, requireIdentity)
	site.POST("/recipes/:id/delete", r.recipeHandler.Delete, requireIdentity)
	site.POST("/recipes/:id/favorite", r.favoriteHandler.Toggle, requireIdentity)
	site.POST("/recipes/:id/reviews", r.recipeHandler.AddReview, requireIdentity)
	site.POST("/images", r.imageHandler.Upload, requireIdentity)
	site.POST("/images/:id/delete", r.imageHandler.Delete, requireIdentity)
}
