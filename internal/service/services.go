package service

import (
	"github.com/homehero/homehero-server/internal/lib/job"
	"github.com/homehero/homehero-server/internal/repository"
	"github.com/homehero/homehero-server/internal/server"
)

// Services groups the business layer for the handlers.
type Services struct {
	Auth     *AuthService
	Catalog  *CatalogService
	Bookings *BookingService
	Users    *UserService
	Job      *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var tasks TaskEnqueuer
	if s.Job != nil {
		tasks = s.Job
	}

	return &Services{
		Auth:     NewAuthService(s),
		Catalog:  NewCatalogService(repos.Services),
		Bookings: NewBookingService(repos.Services, repos.Bookings, tasks),
		Users:    NewUserService(repos.Users, tasks),
		Job:      s.Job,
	}, nil
}
