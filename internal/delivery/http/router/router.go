// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hearts/internal/delivery/http/middleware"
	"hearts/internal/delivery/http/router/handler"
	"hearts/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LivesHandler   *handler.LivesHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Collector
}

// router holds all the handlers that need to be registered.
type router struct {
	livesHandler   *handler.LivesHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		livesHandler:   params.LivesHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and Prometheus scrape endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Signed-out clients see factory defaults; no session is created
	e.GET("/lives/defaults", r.livesHandler.GetDefaults)

	// Lives routes that require authentication
	livesGroup := e.Group("/lives")
	livesGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		livesGroup.GET("", r.livesHandler.GetLives)
		livesGroup.POST("/loss", r.livesHandler.LoseLives)
		livesGroup.POST("/regenerate", r.livesHandler.RegenerateLives)
		livesGroup.POST("/reset", r.livesHandler.ResetLives)
		livesGroup.GET("/regeneration", r.livesHandler.GetRegeneration)
		livesGroup.GET("/access", r.livesHandler.GetAccess)
		livesGroup.GET("/history", r.livesHandler.GetHistory)
		livesGroup.DELETE("/session", r.livesHandler.EndSession)
	}
}
