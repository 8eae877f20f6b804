// Package storeerr handles document store driver errors.
//
// It classifies errors returned by the MongoDB driver and converts them
// into application HTTP errors (a duplicate key becomes a 400 with a
// readable message, a missing document a 404, anything else a 500 that
// leaks no driver details).
package storeerr

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Code is the category of a store failure.
type Code string

const (
	Other        Code = "other"
	NotFound     Code = "not_found"
	DuplicateKey Code = "duplicate_key"
	Timeout      Code = "timeout"
	Network      Code = "network"
)

// Classify reports the category of err.
func Classify(err error) Code {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case mongo.IsNetworkError(err):
		return Network
	default:
		return Other
	}
}
