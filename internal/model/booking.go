package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Known booking statuses. Status updates are not restricted to these
// values; see BookingService.UpdateStatus.
const (
	BookingStatusOngoing   = "ongoing"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a reservation against a Service.
//
// Title through Image are copied from the Service when the booking is
// created, so later edits to the Service do not change existing bookings.
type Booking struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ServiceID   string             `json:"serviceId" bson:"serviceId"`
	UID         *string            `json:"uid" bson:"uid"`
	UserEmail   string             `json:"userEmail" bson:"userEmail"`
	Title       string             `json:"title" bson:"title"`
	Category    string             `json:"category" bson:"category"`
	HourlyRate  float64            `json:"hourly_rate" bson:"hourly_rate"`
	Price       float64            `json:"price" bson:"price"`
	Duration    *string            `json:"duration,omitempty" bson:"duration,omitempty"`
	Location    *string            `json:"location,omitempty" bson:"location,omitempty"`
	Image       *string            `json:"image,omitempty" bson:"image,omitempty"`
	BookingDate string             `json:"bookingDate" bson:"bookingDate"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
