package repository

import (
	"github.com/homehero/homehero-server/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Services *ServiceRepository
	Bookings *BookingRepository
	Users    *UserRepository
}

// NewRepositories builds every repository on the shared store connection.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Services: NewServiceRepository(s.DB),
		Bookings: NewBookingRepository(s.DB),
		Users:    NewUserRepository(s.DB),
	}
}
