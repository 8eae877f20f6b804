package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexSpec pairs a collection with the indexes the repositories rely on.
type indexSpec struct {
	collection string
	models     []mongo.IndexModel
}

// requiredIndexes lists every index the application expects.
//
// users.uid is unique: the profile upsert is keyed by it, and the unique
// index turns a concurrent double insert into a duplicate-key error rather
// than two records.
func requiredIndexes() []indexSpec {
	return []indexSpec{
		{
			collection: UsersCollection,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uid_unique")},
			},
		},
		{
			collection: ServicesCollection,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("plain_id").SetSparse(true)},
				{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetName("owner_uid")},
				{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetName("category")},
			},
		},
		{
			collection: BookingsCollection,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "uid", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("customer_uid_created")},
				{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("customer_email_created")},
			},
		},
	}
}

// EnsureIndexes creates any missing index. CreateMany is a no-op for indexes
// that already exist with the same definition.
func EnsureIndexes(ctx context.Context, logger *zerolog.Logger, db *Database) error {
	for _, spec := range requiredIndexes() {
		names, err := db.Collection(spec.collection).Indexes().CreateMany(ctx, spec.models)
		if err != nil {
			return fmt.Errorf("creating indexes on %s: %w", spec.collection, err)
		}

		logger.Info().
			Str("collection", spec.collection).
			Strs("indexes", names).
			Msg("indexes ensured")
	}

	return nil
}
