package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/homehero/homehero-server/internal/errs"
	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/repository"
)

// CatalogService manages service listings.
type CatalogService struct {
	store ServiceStore
	clock func() time.Time
}

func NewCatalogService(store ServiceStore) *CatalogService {
	return &CatalogService{store: store, clock: time.Now}
}

// ErrNoValidFields is returned when an update carries no editable field.
var ErrNoValidFields = errs.NewBadRequestError("No valid fields to update", true, nil, nil, nil)

func serviceNotFound() error {
	return errs.NewNotFoundError("Service not found", true, nil)
}

// List returns every service matching params.
func (s *CatalogService) List(ctx context.Context, params repository.ServiceSearch) ([]model.Service, error) {
	services, err := s.store.Search(ctx, repository.BuildServiceQuery(params))
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to fetch services")
	}
	return services, nil
}

// Get returns the service addressed by id, either identifier form.
func (s *CatalogService) Get(ctx context.Context, id string) (*model.Service, error) {
	res, err := s.resolve(ctx, id, "Failed to fetch service")
	if err != nil {
		return nil, err
	}
	return res.Record, nil
}

// Create stores a new listing. The store assigns the surrogate key.
func (s *CatalogService) Create(ctx context.Context, svc *model.Service) (*model.Service, error) {
	svc.CreatedAt = s.clock().UTC()
	svc.UpdatedAt = nil

	if err := s.store.Insert(ctx, svc); err != nil {
		return nil, storeFailure(ctx, err, "Failed to add service")
	}
	return svc, nil
}

// Update applies the whitelisted fields of update for an owner.
func (s *CatalogService) Update(ctx context.Context, id string, update model.ServiceUpdate, caller model.Caller) (*model.Service, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		return nil, ErrNoValidFields
	}

	res, err := s.resolve(ctx, id, "Failed to update service")
	if err != nil {
		return nil, err
	}

	if ok, reason := AuthorizeOwner(res.Record.Owner(), caller); !ok {
		return nil, errs.NewForbiddenError(reason, true)
	}

	updated, err := s.store.Update(ctx, res.Record.ID, fields, s.clock().UTC())
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to update service")
	}
	if updated == nil {
		return nil, serviceNotFound()
	}
	return updated, nil
}

// Delete removes a listing for an owner.
func (s *CatalogService) Delete(ctx context.Context, id string, caller model.Caller) (*model.Ack, error) {
	res, err := s.resolve(ctx, id, "Failed to delete service")
	if err != nil {
		return nil, err
	}

	if ok, reason := AuthorizeOwner(res.Record.Owner(), caller); !ok {
		return nil, errs.NewForbiddenError(reason, true)
	}

	deleted, err := s.store.Delete(ctx, res.Record.ID)
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to delete service")
	}
	if !deleted {
		return nil, serviceNotFound()
	}
	return &model.Ack{Success: true, Message: "Service deleted"}, nil
}

// ListByOwner returns the listings owned by uid, newest first.
func (s *CatalogService) ListByOwner(ctx context.Context, uid string) ([]model.Service, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, errs.NewBadRequestError("uid is required", true, nil, nil, nil)
	}

	services, err := s.store.ListByOwner(ctx, uid)
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to fetch your services")
	}
	return services, nil
}

func (s *CatalogService) resolve(ctx context.Context, id, failure string) (repository.Resolved[model.Service], error) {
	if strings.TrimSpace(id) == "" {
		return repository.Resolved[model.Service]{}, errs.NewInvalidIDError()
	}

	res, err := s.store.Resolve(ctx, id)
	if err != nil {
		return res, storeFailure(ctx, err, failure)
	}
	if !res.Found() {
		return res, serviceNotFound()
	}

	zerolog.Ctx(ctx).Debug().
		Str("service_id", id).
		Str("resolved_via", res.Via.String()).
		Msg("service resolved")

	return res, nil
}
