// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mediq/internal/delivery/http/middleware"
	"mediq/internal/delivery/http/router/handler"
	"mediq/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/doctor", r.authHandler.RegisterDoctor)
		authGroup.POST("/register/patient", r.authHandler.RegisterPatient)
		authGroup.POST("/login/doctor", r.authHandler.LoginDoctor)
		authGroup.POST("/login/patient", r.authHandler.LoginPatient)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.GET("/verify-email/:token", r.authHandler.VerifyEmail)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Routes that require authentication
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.profileHandler.GetMe)
		meGroup.PUT("/doctor-profile", r.profileHandler.UpdateDoctorProfile,
			r.authMiddleware.RequireRole(entity.RoleDoctor))
	}
}
