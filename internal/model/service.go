package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a listed offering.
//
// ID is the surrogate key assigned by the store. PlainID is an optional
// externally supplied identifier; both address the same record.
type Service struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PlainID       *string            `json:"id,omitempty" bson:"id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Category      string             `json:"category" bson:"category"`
	HourlyRate    float64            `json:"hourly_rate" bson:"hourly_rate"`
	Rating        *float64           `json:"rating,omitempty" bson:"rating,omitempty"`
	Description   *string            `json:"description,omitempty" bson:"description,omitempty"`
	Image         *string            `json:"image,omitempty" bson:"image,omitempty"`
	Duration      *string            `json:"duration,omitempty" bson:"duration,omitempty"`
	Location      *string            `json:"location,omitempty" bson:"location,omitempty"`
	UID           *string            `json:"uid" bson:"uid"`
	ProviderEmail *string            `json:"providerEmail" bson:"providerEmail"`
	Featured      bool               `json:"featured" bson:"featured"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Owner returns the ownership fields of the Service.
func (s *Service) Owner() Ownership {
	return Ownership{UID: s.UID, ProviderEmail: s.ProviderEmail}
}

// ServiceUpdate is the whitelist of Service fields a PATCH may change.
// Ownership fields and timestamps are deliberately absent.
type ServiceUpdate struct {
	Title       *string
	Category    *string
	HourlyRate  *float64
	Rating      *float64
	Description *string
	Image       *string
	Duration    *string
	Location    *string
	Featured    *bool
}

// Fields returns the bson field/value pairs that are set, keyed by their
// stored names. An empty map means the update carries nothing.
func (u ServiceUpdate) Fields() map[string]any {
	fields := map[string]any{}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}

	setString("title", u.Title)
	setString("category", u.Category)
	setString("description", u.Description)
	setString("image", u.Image)
	setString("duration", u.Duration)
	setString("location", u.Location)

	if u.HourlyRate != nil {
		fields["hourly_rate"] = *u.HourlyRate
	}
	if u.Rating != nil {
		fields["rating"] = *u.Rating
	}
	if u.Featured != nil {
		fields["featured"] = *u.Featured
	}

	return fields
}
