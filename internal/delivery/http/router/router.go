// Package router contains routing setup for the HTTP delivery.
package router

import (
	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler           *handler.UserHandler
	ActivityHandler       *handler.ActivityHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler           *handler.UserHandler
	activityHandler       *handler.ActivityHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:           params.UserHandler,
		activityHandler:       params.ActivityHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// User routes: registration and session management
	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/signin", r.userHandler.Signin)
		userGroup.POST("/refresh", r.userHandler.RefreshToken)
		userGroup.POST("/logout", r.userHandler.Logout)
	}

	// Activity routes require authentication
	activityGroup := api.Group("/activities")
	activityGroup.Use(r.authMiddleware.Authenticate)
	{
		activityGroup.POST("/create", r.activityHandler.Track)
		activityGroup.GET("/all", r.activityHandler.ListAll)
	}

	// Recommendation routes require authentication
	recGroup := api.Group("/recommendations")
	recGroup.Use(r.authMiddleware.Authenticate)
	{
		recGroup.POST("/activity/:activityId", r.recommendationHandler.Generate)
		recGroup.GET("/activity/:activityId", r.recommendationHandler.ListForActivity)
		recGroup.GET("/user/:userId", r.recommendationHandler.ListForUser)
	}
}
