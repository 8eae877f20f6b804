// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated input, services make the authorization and workflow decisions,
// and the stores behind the interfaces below do the reads and writes.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homehero/homehero-server/internal/lib/job"
	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/repository"
	"github.com/homehero/homehero-server/internal/storeerr"
)

// ServiceStore is the persistence the catalog and booking workflow need.
type ServiceStore interface {
	Resolve(ctx context.Context, id string) (repository.Resolved[model.Service], error)
	Search(ctx context.Context, plan repository.QueryPlan) ([]model.Service, error)
	ListByOwner(ctx context.Context, uid string) ([]model.Service, error)
	Insert(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, key primitive.ObjectID, fields map[string]any, now time.Time) (*model.Service, error)
	Delete(ctx context.Context, key primitive.ObjectID) (bool, error)
}

// BookingStore persists bookings.
type BookingStore interface {
	Insert(ctx context.Context, b *model.Booking) error
	ListByCustomer(ctx context.Context, uid, email string) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, key primitive.ObjectID, status string, now time.Time) (bool, error)
	Delete(ctx context.Context, key primitive.ObjectID) (bool, error)
}

// UserStore persists user profiles.
type UserStore interface {
	Upsert(ctx context.Context, profile model.UserProfile, now time.Time) (*model.User, bool, error)
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	Update(ctx context.Context, uid string, fields map[string]any, now time.Time) (bool, error)
}

// TaskEnqueuer schedules the emails that follow a booking or a first sync.
type TaskEnqueuer interface {
	EnqueueWelcome(ctx context.Context, to, name string) error
	EnqueueBookingConfirmation(ctx context.Context, p job.BookingConfirmationPayload) error
}

// storeFailure logs the driver error on the request logger and converts it
// to the client-facing error carrying message.
func storeFailure(ctx context.Context, err error, message string) error {
	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("store_error", string(storeerr.Classify(err))).
		Msg(message)

	return storeerr.Wrap(err, message)
}
