// Package router builds the Echo instance: global middleware in order,
// then the system and API routes.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homehero/homehero-server/internal/handler"
	"github.com/homehero/homehero-server/internal/middleware"
	"github.com/homehero/homehero-server/internal/server"
	"github.com/homehero/homehero-server/internal/service"
)

// NewRouter wires middleware and routes.
//
// Order matters: the request id and New Relic transaction must exist
// before the caller is identified, and the identity before the
// request-scoped logger is built, so every log line carries all three.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Auth.Identify(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerServiceRoutes(router, h)
	registerBookingRoutes(router, h)
	registerUserRoutes(router, h)

	s.Logger.Info().
		Bool("token_verification", services.Auth.Enabled()).
		Int("routes", len(router.Routes())).
		Msg("router initialized")

	return router
}

func registerServiceRoutes(r *echo.Echo, h *handler.Handlers) {
	sh := h.Services

	r.GET("/services", handler.Handle(sh.Handler, sh.ListServices, http.StatusOK, &handler.ListServicesRequest{}))
	r.GET("/services/:id", handler.Handle(sh.Handler, sh.GetService, http.StatusOK, &handler.ServiceIDRequest{}))
	r.POST("/services", handler.Handle(sh.Handler, sh.CreateService, http.StatusCreated, &handler.CreateServiceRequest{}))
	r.PATCH("/services/:id", handler.Handle(sh.Handler, sh.UpdateService, http.StatusOK, &handler.UpdateServiceRequest{}))
	r.DELETE("/services/:id", handler.Handle(sh.Handler, sh.DeleteService, http.StatusOK, &handler.DeleteServiceRequest{}))
	r.GET("/my-services", handler.Handle(sh.Handler, sh.MyServices, http.StatusOK, &handler.MyServicesRequest{}))
}

func registerBookingRoutes(r *echo.Echo, h *handler.Handlers) {
	bh := h.Bookings

	r.POST("/bookings", handler.Handle(bh.Handler, bh.CreateBooking, http.StatusCreated, &handler.CreateBookingRequest{}))
	r.GET("/bookings", handler.Handle(bh.Handler, bh.ListBookings, http.StatusOK, &handler.ListBookingsRequest{}))
	r.PATCH("/bookings/:id", handler.Handle(bh.Handler, bh.UpdateBooking, http.StatusOK, &handler.UpdateBookingRequest{}))
	r.DELETE("/bookings/:id", handler.Handle(bh.Handler, bh.DeleteBooking, http.StatusOK, &handler.BookingIDRequest{}))
}

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	uh := h.Users

	r.POST("/users/sync", handler.Handle(uh.Handler, uh.SyncUser, http.StatusOK, &handler.SyncUserRequest{}))
	r.GET("/users/:uid", handler.Handle(uh.Handler, uh.GetUser, http.StatusOK, &handler.UserIDRequest{}))
	r.PATCH("/users/:uid", handler.Handle(uh.Handler, uh.UpdateUser, http.StatusOK, &handler.UpdateUserRequest{}))
}
