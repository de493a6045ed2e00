// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campground/internal/delivery/api/middleware"
	"campground/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CampgroundHandler   *handler.CampgroundHandler
	FollowHandler       *handler.FollowHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	campgroundHandler   *handler.CampgroundHandler
	followHandler       *handler.FollowHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		campgroundHandler:   params.CampgroundHandler,
		followHandler:       params.FollowHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public campground browsing
	apiV1.GET("/campgrounds", r.campgroundHandler.ListCampgrounds)
	apiV1.GET("/campgrounds/:id", r.campgroundHandler.GetCampground)
	apiV1.GET("/users/:id/followers", r.followHandler.GetFollowers)
	apiV1.GET("/users/:id/follow-qr", r.followHandler.GenerateFollowQR)

	// Everything below requires a signed-in actor
	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	campgroundsGroup := authed.Group("/campgrounds")
	{
		campgroundsGroup.POST("", r.campgroundHandler.CreateCampground)
		campgroundsGroup.PUT("/:id", r.campgroundHandler.UpdateCampground)
		campgroundsGroup.DELETE("/:id", r.campgroundHandler.DeleteCampground)
	}

	usersGroup := authed.Group("/users")
	{
		usersGroup.POST("/:id/follow", r.followHandler.Follow)
		usersGroup.DELETE("/:id/follow", r.followHandler.Unfollow)
	}

	authed.POST("/follows/qr", r.followHandler.FollowByQR)

	notificationsGroup := authed.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.GetNotifications)
		notificationsGroup.POST("/:id/read", r.notificationHandler.OpenNotification)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}
}
