// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"cookbook/config"
	"cookbook/internal/delivery/api/middleware"
	"cookbook/internal/delivery/api/router/handler"
	"cookbook/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RecipeHandler     *handler.RecipeHandler
	HealthHandler     *handler.HealthHandler
	SessionMiddleware *middleware.SessionMiddleware
	Metrics           *metrics.Metrics
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	recipeHandler     *handler.RecipeHandler
	healthHandler     *handler.HealthHandler
	sessionMiddleware *middleware.SessionMiddleware
	metrics           *metrics.Metrics
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		recipeHandler:     params.RecipeHandler,
		healthHandler:     params.HealthHandler,
		sessionMiddleware: params.SessionMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Session routes
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)
	e.GET("/check_session", r.authHandler.CheckSession)
	e.DELETE("/logout", r.authHandler.Logout)

	recipesGroup := e.Group("/recipes")
	recipesGroup.Use(r.sessionMiddleware.RequireSession)
	{
		recipesGroup.GET("", r.recipeHandler.List)
		recipesGroup.POST("", r.recipeHandler.Create)
	}
}
