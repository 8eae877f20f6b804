package router

import (
	"github.com/labstack/echo/v4"

	"github.com/homehero/homehero-server/internal/handler"
)

// registerSystemRoutes registers the routes that are not part of the API:
// the banner, health, docs and the static assets the docs page loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Root)
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", "static")
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
