package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homehero/homehero-server/internal/database"
	"github.com/homehero/homehero-server/internal/model"
)

// BookingRepository stores Booking documents.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *database.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(database.BookingsCollection)}
}

// Insert stores b and sets its surrogate key.
func (r *BookingRepository) Insert(ctx context.Context, b *model.Booking) error {
	result, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if key, ok := result.InsertedID.(primitive.ObjectID); ok {
		b.ID = key
	}
	return nil
}

// FindByKey returns the Booking with the given key, or nil.
func (r *BookingRepository) FindByKey(ctx context.Context, key primitive.ObjectID) (*model.Booking, error) {
	var b model.Booking
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CustomerFilter builds the filter for a customer's bookings. The email
// comparison is case-insensitive; when both identifiers are given either
// may match.
func CustomerFilter(uid, email string) bson.D {
	var clauses bson.A
	if uid != "" {
		clauses = append(clauses, bson.D{{Key: "uid", Value: uid}})
	}
	if email != "" {
		clauses = append(clauses, bson.D{{Key: "userEmail", Value: primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(email) + "$",
			Options: "i",
		}}})
	}

	switch len(clauses) {
	case 0:
		return bson.D{}
	case 1:
		return clauses[0].(bson.D)
	default:
		return bson.D{{Key: "$or", Value: clauses}}
	}
}

// ListByCustomer returns the customer's bookings, newest first.
func (r *BookingRepository) ListByCustomer(ctx context.Context, uid, email string) ([]model.Booking, error) {
	cursor, err := r.coll.Find(ctx,
		CustomerFilter(uid, email),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	bookings := []model.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings, nil
}

// UpdateStatus overwrites the status of the Booking with the given key and
// reports whether it exists.
func (r *BookingRepository) UpdateStatus(ctx context.Context, key primitive.ObjectID, status string, now time.Time) (bool, error) {
	result, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: key}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updatedAt", Value: now},
		}}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Delete removes the Booking with the given key and reports whether one
// was removed.
func (r *BookingRepository) Delete(ctx context.Context, key primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: key}})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
