package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homehero/homehero-server/internal/errs"
	"github.com/homehero/homehero-server/internal/lib/job"
	"github.com/homehero/homehero-server/internal/model"
)

// NewBooking is the input of the booking workflow. Snapshot fields left
// nil are copied from the resolved service.
type NewBooking struct {
	ServiceID   string
	UID         string
	UserEmail   string
	BookingDate string

	Title      *string
	Category   *string
	HourlyRate *float64
	Price      *float64
	Duration   *string
	Location   *string
	Image      *string
}

// BookingService runs the booking workflow and manages existing bookings.
type BookingService struct {
	services ServiceStore
	bookings BookingStore
	tasks    TaskEnqueuer
	clock    func() time.Time
}

func NewBookingService(services ServiceStore, bookings BookingStore, tasks TaskEnqueuer) *BookingService {
	return &BookingService{
		services: services,
		bookings: bookings,
		tasks:    tasks,
		clock:    time.Now,
	}
}

// Create books a service:
//
//  1. serviceId, userEmail and bookingDate are required
//  2. the service is resolved by either identifier form
//  3. the customer may not be the service owner
//  4. the snapshot takes explicit fields over the service's own
//  5. the booking is stored as ongoing
//
// Steps 2 to 5 are not atomic; two concurrent bookings of the same service
// both succeed.
func (s *BookingService) Create(ctx context.Context, in NewBooking) (*model.Booking, error) {
	if err := requireBookingFields(in); err != nil {
		return nil, err
	}

	res, err := s.services.Resolve(ctx, in.ServiceID)
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to create booking")
	}
	if !res.Found() {
		return nil, serviceNotFound()
	}

	svc := res.Record
	if IsSelfBooking(svc.Owner(), model.Caller{UID: in.UID, Email: in.UserEmail}) {
		return nil, errs.NewForbiddenError("You cannot book your own service", true)
	}

	booking := Snapshot(svc, in)
	booking.Status = model.BookingStatusOngoing
	booking.CreatedAt = s.clock().UTC()

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, storeFailure(ctx, err, "Failed to create booking")
	}

	s.enqueueConfirmation(ctx, booking)

	return booking, nil
}

// Snapshot builds the denormalized booking from svc and the request.
func Snapshot(svc *model.Service, in NewBooking) *model.Booking {
	b := &model.Booking{
		ServiceID:   in.ServiceID,
		UID:         model.StringPtr(in.UID),
		UserEmail:   in.UserEmail,
		BookingDate: in.BookingDate,
		Title:       orString(in.Title, svc.Title),
		Category:    orString(in.Category, svc.Category),
		HourlyRate:  orFloat(in.HourlyRate, svc.HourlyRate),
		Duration:    orStringPtr(in.Duration, svc.Duration),
		Location:    orStringPtr(in.Location, svc.Location),
		Image:       orStringPtr(in.Image, svc.Image),
	}
	b.Price = orFloat(in.Price, svc.HourlyRate)
	return b
}

func requireBookingFields(in NewBooking) error {
	var missing []errs.FieldError
	if strings.TrimSpace(in.ServiceID) == "" {
		missing = append(missing, errs.FieldError{Field: "serviceId", Error: "is required"})
	}
	if strings.TrimSpace(in.UserEmail) == "" {
		missing = append(missing, errs.FieldError{Field: "userEmail", Error: "is required"})
	}
	if strings.TrimSpace(in.BookingDate) == "" {
		missing = append(missing, errs.FieldError{Field: "bookingDate", Error: "is required"})
	}
	if len(missing) > 0 {
		return errs.NewBadRequestError("serviceId, userEmail and bookingDate are required", true, nil, missing, nil)
	}
	return nil
}

func (s *BookingService) enqueueConfirmation(ctx context.Context, b *model.Booking) {
	if s.tasks == nil {
		return
	}

	err := s.tasks.EnqueueBookingConfirmation(ctx, job.BookingConfirmationPayload{
		To:           b.UserEmail,
		BookingID:    b.ID.Hex(),
		ServiceTitle: b.Title,
		Category:     b.Category,
		BookingDate:  b.BookingDate,
		Price:        b.Price,
		Location:     model.Deref(b.Location),
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("booking_id", b.ID.Hex()).
			Msg("failed to enqueue booking confirmation")
	}
}

// List returns a customer's bookings, newest first. With both uid and
// email a booking matching either is returned.
func (s *BookingService) List(ctx context.Context, uid, email string) ([]model.Booking, error) {
	uid, email = strings.TrimSpace(uid), strings.TrimSpace(email)
	if uid == "" && email == "" {
		return nil, errs.NewBadRequestError("uid or userEmail is required", true, nil, nil, nil)
	}

	bookings, err := s.bookings.ListByCustomer(ctx, uid, email)
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to fetch bookings")
	}
	return bookings, nil
}

// UpdateStatus overwrites the status of a booking. Any non-empty value is
// accepted and no prior state is required.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (*model.Ack, error) {
	key, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewInvalidIDError()
	}
	if strings.TrimSpace(status) == "" {
		return nil, errs.NewBadRequestError("status is required", true, nil, nil, nil)
	}

	found, err := s.bookings.UpdateStatus(ctx, key, status, s.clock().UTC())
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to update booking")
	}
	if !found {
		return nil, bookingNotFound()
	}
	return &model.Ack{Success: true, Message: "Booking updated"}, nil
}

// Delete removes a booking by surrogate key.
func (s *BookingService) Delete(ctx context.Context, id string) (*model.Ack, error) {
	key, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewInvalidIDError()
	}

	deleted, err := s.bookings.Delete(ctx, key)
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to delete booking")
	}
	if !deleted {
		return nil, bookingNotFound()
	}
	return &model.Ack{Success: true, Message: "Booking deleted"}, nil
}

func bookingNotFound() error {
	return errs.NewNotFoundError("Booking not found", true, nil)
}

func orString(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func orStringPtr(v *string, fallback *string) *string {
	if v != nil {
		return v
	}
	return fallback
}

func orFloat(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
