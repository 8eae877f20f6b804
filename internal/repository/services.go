package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homehero/homehero-server/internal/database"
	"github.com/homehero/homehero-server/internal/model"
)

// ServiceRepository stores Service documents.
type ServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *database.Database) *ServiceRepository {
	return &ServiceRepository{coll: db.Collection(database.ServicesCollection)}
}

// FindByKey returns the Service with the given surrogate key, or nil.
func (r *ServiceRepository) FindByKey(ctx context.Context, key primitive.ObjectID) (*model.Service, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: key}})
}

// FindByPlainID returns the Service whose plain `id` field equals value, or nil.
func (r *ServiceRepository) FindByPlainID(ctx context.Context, value string) (*model.Service, error) {
	return r.findOne(ctx, bson.D{{Key: "id", Value: value}})
}

// Resolve locates a Service by surrogate key or plain identifier.
func (r *ServiceRepository) Resolve(ctx context.Context, id string) (Resolved[model.Service], error) {
	return Resolve(ctx, id, r.FindByKey, r.FindByPlainID)
}

func (r *ServiceRepository) findOne(ctx context.Context, filter bson.D) (*model.Service, error) {
	var svc model.Service
	err := r.coll.FindOne(ctx, filter).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// Search runs a plan built by BuildServiceQuery and returns every match.
func (r *ServiceRepository) Search(ctx context.Context, plan QueryPlan) ([]model.Service, error) {
	return r.find(ctx, plan.Filter, options.Find().SetSort(plan.Sort))
}

// ListByOwner returns the Services owned by uid, newest first.
func (r *ServiceRepository) ListByOwner(ctx context.Context, uid string) ([]model.Service, error) {
	return r.find(ctx,
		bson.D{{Key: "uid", Value: uid}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
}

func (r *ServiceRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]model.Service, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	services := []model.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	if services == nil {
		services = []model.Service{}
	}
	return services, nil
}

// Insert stores svc and sets its surrogate key.
func (r *ServiceRepository) Insert(ctx context.Context, svc *model.Service) error {
	result, err := r.coll.InsertOne(ctx, svc)
	if err != nil {
		return err
	}
	if key, ok := result.InsertedID.(primitive.ObjectID); ok {
		svc.ID = key
	}
	return nil
}

// Update sets fields on the Service with the given key and returns the
// updated document, or nil when it no longer exists.
func (r *ServiceRepository) Update(ctx context.Context, key primitive.ObjectID, fields map[string]any, now time.Time) (*model.Service, error) {
	set := bson.D{}
	for field, value := range fields {
		set = append(set, bson.E{Key: field, Value: value})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: now})

	var svc model.Service
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: key}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// Delete removes the Service with the given key and reports whether one
// was removed.
func (r *ServiceRepository) Delete(ctx context.Context, key primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: key}})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
