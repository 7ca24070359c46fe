package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/space-booking/internal/handler"
	"github.com/iliyamo/space-booking/internal/middleware"
)

// RegisterRequests registers the booking-request lifecycle endpoints.
// Every route requires a valid access token; the resolve endpoint
// additionally enforces space ownership inside the handler.
func RegisterRequests(e *echo.Echo, h *handler.RequestHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	g.POST("/requests", h.CreateRequest)
	g.GET("/requests", h.ListRequests)
	g.GET("/requests/:id", h.GetRequest)
	g.POST("/requests/:id", h.ResolveRequest)
}
