package handler

import (
	"github.com/homehero/homehero-server/internal/server"
	"github.com/homehero/homehero-server/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Services *ServiceHandler
	Bookings *BookingHandler
	Users    *UserHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Services: NewServiceHandler(s, services.Catalog),
		Bookings: NewBookingHandler(s, services.Bookings),
		Users:    NewUserHandler(s, services.Users),
	}
}
