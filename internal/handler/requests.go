package handler

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homehero/homehero-server/internal/errs"
	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/repository"
	"github.com/homehero/homehero-server/internal/service"
	"github.com/homehero/homehero-server/internal/validation"
)

// Service create and update use different schemas on purpose. Create binds
// a typed body and silently ignores keys it does not know; update accepts
// only the editable whitelist and fails when none of it is present.

type ListServicesRequest struct {
	Search   string `query:"search"`
	Sort     string `query:"sort"`
	Category string `query:"category"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
}

func (r *ListServicesRequest) Validate() error {
	return nil
}

func (r *ListServicesRequest) Params() repository.ServiceSearch {
	return repository.ServiceSearch{
		Search:   r.Search,
		Category: r.Category,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		Sort:     r.Sort,
	}
}

type ServiceIDRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *ServiceIDRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errs.NewInvalidIDError()
	}
	return nil
}

type CreateServiceRequest struct {
	PlainID       *string  `json:"id"`
	Title         string   `json:"title" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	HourlyRate    *float64 `json:"hourly_rate" validate:"required,gte=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	Duration      *string  `json:"duration"`
	Location      *string  `json:"location"`
	UID           *string  `json:"uid"`
	ProviderEmail *string  `json:"providerEmail" validate:"omitempty,email"`
	Featured      bool     `json:"featured"`
}

func (r *CreateServiceRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateServiceRequest) Service() *model.Service {
	return &model.Service{
		PlainID:       nonEmpty(r.PlainID),
		Title:         r.Title,
		Category:      r.Category,
		HourlyRate:    *r.HourlyRate,
		Rating:        r.Rating,
		Description:   r.Description,
		Image:         r.Image,
		Duration:      r.Duration,
		Location:      r.Location,
		UID:           nonEmpty(r.UID),
		ProviderEmail: nonEmpty(r.ProviderEmail),
		Featured:      r.Featured,
	}
}

type UpdateServiceRequest struct {
	ID        string `param:"id" json:"-"`
	UID       string `json:"uid"`
	UserEmail string `json:"userEmail"`

	Title       *string  `json:"title"`
	Category    *string  `json:"category"`
	HourlyRate  *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Duration    *string  `json:"duration"`
	Location    *string  `json:"location"`
	Featured    *bool    `json:"featured"`
}

func (r *UpdateServiceRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errs.NewInvalidIDError()
	}
	if len(r.Update().Fields()) == 0 {
		return service.ErrNoValidFields
	}
	return validation.Struct(r)
}

func (r *UpdateServiceRequest) Update() model.ServiceUpdate {
	return model.ServiceUpdate{
		Title:       r.Title,
		Category:    r.Category,
		HourlyRate:  r.HourlyRate,
		Rating:      r.Rating,
		Description: r.Description,
		Image:       r.Image,
		Duration:    r.Duration,
		Location:    r.Location,
		Featured:    r.Featured,
	}
}

// DeleteServiceRequest takes the caller identity from the query string or
// the body.
type DeleteServiceRequest struct {
	ID        string `param:"id" json:"-"`
	UID       string `query:"uid" json:"uid"`
	UserEmail string `query:"userEmail" json:"userEmail"`
}

func (r *DeleteServiceRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errs.NewInvalidIDError()
	}
	return nil
}

type MyServicesRequest struct {
	UID string `query:"uid"`
}

func (r *MyServicesRequest) Validate() error {
	return nil
}

type CreateBookingRequest struct {
	ServiceID   string `json:"serviceId" validate:"required"`
	UID         string `json:"uid"`
	UserEmail   string `json:"userEmail" validate:"required"`
	BookingDate string `json:"bookingDate" validate:"required"`

	Title      *string  `json:"title"`
	Category   *string  `json:"category"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration   *string  `json:"duration"`
	Location   *string  `json:"location"`
	Image      *string  `json:"image"`
}

func (r *CreateBookingRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateBookingRequest) Booking() service.NewBooking {
	return service.NewBooking{
		ServiceID:   r.ServiceID,
		UID:         r.UID,
		UserEmail:   r.UserEmail,
		BookingDate: r.BookingDate,
		Title:       r.Title,
		Category:    r.Category,
		HourlyRate:  r.HourlyRate,
		Price:       r.Price,
		Duration:    r.Duration,
		Location:    r.Location,
		Image:       r.Image,
	}
}

type ListBookingsRequest struct {
	UID       string `query:"uid"`
	UserEmail string `query:"userEmail"`
}

func (r *ListBookingsRequest) Validate() error {
	return nil
}

type UpdateBookingRequest struct {
	ID     string `param:"id" json:"-"`
	Status string `json:"status" validate:"required"`
}

func (r *UpdateBookingRequest) Validate() error {
	if !primitive.IsValidObjectID(r.ID) {
		return errs.NewInvalidIDError()
	}
	return validation.Struct(r)
}

type BookingIDRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *BookingIDRequest) Validate() error {
	if !primitive.IsValidObjectID(r.ID) {
		return errs.NewInvalidIDError()
	}
	return nil
}

type SyncUserRequest struct {
	UID         string     `json:"uid" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	Name        string     `json:"name"`
	PhotoURL    string     `json:"photoURL"`
	Providers   []string   `json:"providers"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

func (r *SyncUserRequest) Validate() error {
	return validation.Struct(r)
}

func (r *SyncUserRequest) Profile() model.UserProfile {
	profile := model.UserProfile{
		UID:       r.UID,
		Email:     r.Email,
		Name:      r.Name,
		PhotoURL:  r.PhotoURL,
		Providers: r.Providers,
	}
	if r.LastLoginAt != nil {
		profile.LastLoginAt = r.LastLoginAt.UTC()
	}
	return profile
}

type UserIDRequest struct {
	UID string `param:"uid" json:"-" validate:"required"`
}

func (r *UserIDRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateUserRequest struct {
	UID      string  `param:"uid" json:"-" validate:"required"`
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoURL"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if len(r.Update().Fields()) == 0 {
		return service.ErrNoValidFields
	}
	return nil
}

func (r *UpdateUserRequest) Update() model.UserUpdate {
	return model.UserUpdate{Name: r.Name, PhotoURL: r.PhotoURL}
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
