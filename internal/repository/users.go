package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homehero/homehero-server/internal/database"
	"github.com/homehero/homehero-server/internal/model"
)

// UserRepository stores User documents keyed by uid.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(database.UsersCollection)}
}

// UpsertDocument builds the single atomic update used by Upsert:
// identity and createdAt only on insert, the profile and updatedAt always.
func UpsertDocument(profile model.UserProfile, now time.Time) bson.D {
	providers := profile.Providers
	if providers == nil {
		providers = []string{}
	}

	return bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "email", Value: profile.Email},
			{Key: "name", Value: profile.Name},
			{Key: "photoURL", Value: profile.PhotoURL},
			{Key: "providers", Value: providers},
			{Key: "lastLoginAt", Value: profile.LastLoginAt},
			{Key: "updatedAt", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "uid", Value: profile.UID},
			{Key: "createdAt", Value: now},
		}},
	}
}

// Upsert creates the profile if no user has its uid, otherwise overwrites
// the mutable fields. It is one store-side FindOneAndUpdate, never a
// read-then-write. created reports whether this call inserted the record.
func (r *UserRepository) Upsert(ctx context.Context, profile model.UserProfile, now time.Time) (user *model.User, created bool, err error) {
	// The store keeps millisecond precision; truncate so createdAt and
	// updatedAt read back equal on insert.
	now = now.UTC().Truncate(time.Millisecond)

	filter := bson.D{{Key: "uid", Value: profile.UID}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var u model.User
	err = r.coll.FindOneAndUpdate(ctx, filter, UpsertDocument(profile, now), opts).Decode(&u)

	// Two concurrent first syncs can race on the unique uid index; the
	// loser retries and lands on the update path.
	if mongo.IsDuplicateKeyError(err) {
		err = r.coll.FindOneAndUpdate(ctx, filter, UpsertDocument(profile, now), opts).Decode(&u)
	}
	if err != nil {
		return nil, false, err
	}

	return &u, u.CreatedAt.Equal(u.UpdatedAt), nil
}

// FindByUID returns the user with the given uid, or nil.
func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "uid", Value: uid}}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update sets fields on the user with the given uid and reports whether
// the user exists.
func (r *UserRepository) Update(ctx context.Context, uid string, fields map[string]any, now time.Time) (bool, error) {
	set := bson.D{}
	for field, value := range fields {
		set = append(set, bson.E{Key: field, Value: value})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: now})

	result, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "uid", Value: uid}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
