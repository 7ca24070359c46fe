package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/space-booking/internal/handler"
	"github.com/iliyamo/space-booking/internal/middleware"
)

// RegisterSpaces registers the space directory endpoints.  Browsing the
// directory is public and sits behind the Redis response cache; creating
// a listing and inspecting a space's requests require a session.
func RegisterSpaces(e *echo.Echo, h *handler.SpaceHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/v1/spaces", h.ListSpaces, cache)

	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	g.POST("/spaces", h.CreateSpace)
	g.GET("/spaces/:id/requests", h.ListSpaceRequests)
}
