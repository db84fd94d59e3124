package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-management/internal/handler"
	"github.com/iliyamo/contact-management/internal/middleware"
	"github.com/iliyamo/contact-management/internal/repository"
)

// RegisterRoutes wires the full API surface onto the provided Echo
// instance.  Registration and login are public; every other /api route goes
// through the X-API-TOKEN middleware, which resolves the caller before any
// handler runs.
func RegisterRoutes(
	e *echo.Echo,
	users *handler.UserHandler,
	contacts *handler.ContactHandler,
	addresses *handler.AddressHandler,
	health *handler.HealthHandler,
	userRepo *repository.UserRepo,
) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", health.Health)

	// Public account endpoints.
	e.POST("/api/users", users.Register)
	e.POST("/api/users/login", users.Login)

	// Everything below requires a resolved session token.
	auth := e.Group("/api", middleware.APITokenAuth(userRepo))

	auth.GET("/users/current", users.Current)
	auth.PATCH("/users/current", users.Update)
	auth.DELETE("/users/current", users.Logout)

	auth.POST("/contacts", contacts.Create)
	auth.GET("/contacts", contacts.Search)
	auth.GET("/contacts/:id", contacts.Get)
	auth.PUT("/contacts/:id", contacts.Update)
	auth.DELETE("/contacts/:id", contacts.Remove)

	auth.POST("/contacts/:id/addresses", addresses.Create)
	auth.GET("/contacts/:id/addresses", addresses.List)
	auth.GET("/contacts/:id/addresses/:aid", addresses.Get)
	auth.PUT("/contacts/:id/addresses/:aid", addresses.Update)
	auth.DELETE("/contacts/:id/addresses/:aid", addresses.Remove)
}
