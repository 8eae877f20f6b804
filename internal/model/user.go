package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a caller profile keyed by the external account identifier.
type User struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UID         string             `json:"uid" bson:"uid"`
	Email       string             `json:"email" bson:"email"`
	Name        string             `json:"name" bson:"name"`
	PhotoURL    string             `json:"photoURL" bson:"photoURL"`
	Providers   []string           `json:"providers" bson:"providers"`
	LastLoginAt time.Time          `json:"lastLoginAt" bson:"lastLoginAt"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UserProfile is the mutable part of a User written by every sync.
type UserProfile struct {
	UID         string
	Email       string
	Name        string
	PhotoURL    string
	Providers   []string
	LastLoginAt time.Time
}

// UserUpdate is the whitelist of User fields a PATCH may change.
type UserUpdate struct {
	Name     *string
	PhotoURL *string
}

// Fields returns the set fields keyed by stored name.
func (u UserUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.PhotoURL != nil {
		fields["photoURL"] = *u.PhotoURL
	}
	return fields
}
