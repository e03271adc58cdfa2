// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rentcar/internal/delivery/http/middleware"
	"rentcar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CarHandler      *handler.CarHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	carHandler      *handler.CarHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		carHandler:      params.CarHandler,
		favoriteHandler: params.FavoriteHandler,
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

	// User routes: reads answer plain 404 on unknown users, favorite
	// mutations require a bearer token.
	userGroup := e.Group("/users")
	{
		userGroup.GET("/:phoneNumber", r.userHandler.GetUser)
		userGroup.GET("/:phoneNumber/favorites", r.favoriteHandler.GetFavoriteCars)
		userGroup.POST("/:phoneNumber/favorites/:carId", r.favoriteHandler.AddToFavorites, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:phoneNumber/favorites/:carId", r.favoriteHandler.RemoveFromFavorites, r.authMiddleware.Authenticate)
	}

	// Car catalog: reads are public, mutations require authentication.
	carGroup := e.Group("/cars")
	{
		carGroup.GET("", r.carHandler.ListCars)
		carGroup.GET("/:id", r.carHandler.GetCar)
		carGroup.POST("", r.carHandler.CreateCar, r.authMiddleware.Authenticate)
		carGroup.PUT("/:id", r.carHandler.UpdateCar, r.authMiddleware.Authenticate)
		carGroup.DELETE("/:id", r.carHandler.DeleteCar, r.authMiddleware.Authenticate)
	}
}
