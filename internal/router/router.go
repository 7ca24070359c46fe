package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/space-booking/internal/handler"
	"github.com/iliyamo/space-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers account and session routes.  Registration, login
// and refresh live outside any session; logout-all and /me require a
// valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Account creation sits at /v1/users to mirror the resource it creates.
	e.POST("/v1/users", a.Register)

	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout with a refresh_token in the body needs no JWT; the token
	// itself proves the session.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	// Logout with only a bearer token revokes every session of the user.
	auth.POST("/logout", a.Logout)
}
