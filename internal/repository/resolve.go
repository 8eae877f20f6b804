package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolution names the strategy that located a record.
type Resolution int

const (
	// NotFound means neither the surrogate key nor the plain identifier matched.
	NotFound Resolution = iota
	// FoundByKey means the identifier was a surrogate key and it matched.
	FoundByKey
	// FoundByField means the record matched on its plain `id` field.
	FoundByField
)

func (r Resolution) String() string {
	switch r {
	case FoundByKey:
		return "found_by_key"
	case FoundByField:
		return "found_by_field"
	default:
		return "not_found"
	}
}

// Resolved is the tagged result of Resolve.
type Resolved[T any] struct {
	Record *T
	Via    Resolution
}

// Found reports whether a record was located.
func (r Resolved[T]) Found() bool {
	return r.Via != NotFound && r.Record != nil
}

// KeyLookup finds a record by surrogate key. It returns (nil, nil) on a miss.
type KeyLookup[T any] func(ctx context.Context, key primitive.ObjectID) (*T, error)

// FieldLookup finds a record by its plain identifier field. It returns
// (nil, nil) on a miss.
type FieldLookup[T any] func(ctx context.Context, value string) (*T, error)

// Resolve locates a record by a caller-supplied identifier in two explicit
// steps:
//
//  1. If id is a well-formed surrogate key, look it up by key.
//  2. On a miss, or when id is not a surrogate key, look it up by the plain
//     identifier field.
//
// A store error at either step is returned immediately; it never falls
// through to the next step.
func Resolve[T any](ctx context.Context, id string, byKey KeyLookup[T], byField FieldLookup[T]) (Resolved[T], error) {
	if key, err := primitive.ObjectIDFromHex(id); err == nil {
		record, err := byKey(ctx, key)
		if err != nil {
			return Resolved[T]{}, err
		}
		if record != nil {
			return Resolved[T]{Record: record, Via: FoundByKey}, nil
		}
	}

	record, err := byField(ctx, id)
	if err != nil {
		return Resolved[T]{}, err
	}
	if record != nil {
		return Resolved[T]{Record: record, Via: FoundByField}, nil
	}

	return Resolved[T]{Via: NotFound}, nil
}
