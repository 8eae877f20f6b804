package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homehero/homehero-server/internal/errs"
	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/repository"
)

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	if message != "" {
		assert.Equal(t, message, httpErr.Message)
	}
}

func newCatalog(store ServiceStore) *CatalogService {
	s := NewCatalogService(store)
	s.clock = fixedClock
	return s
}

func ownedService(uid string) *model.Service {
	return &model.Service{
		ID:         primitive.NewObjectID(),
		Title:      "Deep Clean",
		Category:   "Cleaning",
		HourlyRate: 25,
		UID:        model.StringPtr(uid),
	}
}

func TestCatalogService_List(t *testing.T) {
	t.Run("passes the built plan to the store", func(t *testing.T) {
		store := new(MockServiceStore)
		params := repository.ServiceSearch{Search: "clean", Sort: "price"}
		want := []model.Service{{Title: "Deep Clean"}}

		store.On("Search", mock.Anything, repository.BuildServiceQuery(params)).Return(want, nil)

		got, err := newCatalog(store).List(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		store.AssertExpectations(t)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		store := new(MockServiceStore)
		store.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("socket closed"))

		_, err := newCatalog(store).List(context.Background(), repository.ServiceSearch{})

		requireHTTPError(t, err, http.StatusInternalServerError, "Failed to fetch services")
		assert.NotContains(t, err.Error(), "socket")
	})
}

func TestCatalogService_Get(t *testing.T) {
	t.Run("blank id is rejected before the store", func(t *testing.T) {
		store := new(MockServiceStore)

		_, err := newCatalog(store).Get(context.Background(), "  ")

		requireHTTPError(t, err, http.StatusBadRequest, "Invalid id")
		store.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("missing service is 404", func(t *testing.T) {
		store := new(MockServiceStore)
		store.On("Resolve", mock.Anything, "svc-1").Return(notFound(), nil)

		_, err := newCatalog(store).Get(context.Background(), "svc-1")

		requireHTTPError(t, err, http.StatusNotFound, "Service not found")
	})

	t.Run("returns the resolved record", func(t *testing.T) {
		store := new(MockServiceStore)
		svc := ownedService("u1")
		store.On("Resolve", mock.Anything, svc.ID.Hex()).Return(found(svc), nil)

		got, err := newCatalog(store).Get(context.Background(), svc.ID.Hex())

		require.NoError(t, err)
		assert.Same(t, svc, got)
	})
}

func TestCatalogService_Create(t *testing.T) {
	store := new(MockServiceStore)
	svc := &model.Service{Title: "Deep Clean", Category: "Cleaning", HourlyRate: 25}

	store.On("Insert", mock.Anything, svc).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Service).ID = primitive.NewObjectID()
	}).Return(nil)

	got, err := newCatalog(store).Create(context.Background(), svc)

	require.NoError(t, err)
	assert.False(t, got.ID.IsZero())
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.Nil(t, got.UID)
	assert.Nil(t, got.ProviderEmail)
}

func TestCatalogService_Update(t *testing.T) {
	title := "X"

	t.Run("no editable fields is 400 without store access", func(t *testing.T) {
		store := new(MockServiceStore)

		_, err := newCatalog(store).Update(context.Background(), "svc-1", model.ServiceUpdate{}, model.Caller{UID: "u1"})

		requireHTTPError(t, err, http.StatusBadRequest, "No valid fields to update")
		store.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("caller without identity is denied", func(t *testing.T) {
		store := new(MockServiceStore)
		svc := ownedService("u1")
		store.On("Resolve", mock.Anything, svc.ID.Hex()).Return(found(svc), nil)

		_, err := newCatalog(store).Update(context.Background(), svc.ID.Hex(), model.ServiceUpdate{Title: &title}, model.Caller{})

		requireHTTPError(t, err, http.StatusForbidden, "Not allowed")
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner updates whitelisted fields", func(t *testing.T) {
		store := new(MockServiceStore)
		svc := ownedService("u1")
		updated := *svc
		updated.Title = title

		store.On("Resolve", mock.Anything, "legacy-1").Return(found(svc), nil)
		store.On("Update", mock.Anything, svc.ID, map[string]any{"title": "X"}, fixedNow).Return(&updated, nil)

		got, err := newCatalog(store).Update(context.Background(), "legacy-1", model.ServiceUpdate{Title: &title}, model.Caller{UID: "u1"})

		require.NoError(t, err)
		assert.Equal(t, "X", got.Title)
		store.AssertExpectations(t)
	})

	t.Run("record removed between resolve and update is 404", func(t *testing.T) {
		store := new(MockServiceStore)
		svc := ownedService("u1")
		store.On("Resolve", mock.Anything, mock.Anything).Return(found(svc), nil)
		store.On("Update", mock.Anything, svc.ID, mock.Anything, fixedNow).Return(nil, nil)

		_, err := newCatalog(store).Update(context.Background(), "x", model.ServiceUpdate{Title: &title}, model.Caller{UID: "u1"})

		requireHTTPError(t, err, http.StatusNotFound, "")
	})
}

func TestCatalogService_Delete(t *testing.T) {
	t.Run("provider email owner may delete", func(t *testing.T) {
		store := new(MockServiceStore)
		svc := &model.Service{ID: primitive.NewObjectID(), ProviderEmail: model.StringPtr("pro@example.com")}
		store.On("Resolve", mock.Anything, "svc-1").Return(found(svc), nil)
		store.On("Delete", mock.Anything, svc.ID).Return(true, nil)

		ack, err := newCatalog(store).Delete(context.Background(), "svc-1", model.Caller{Email: "PRO@example.com"})

		require.NoError(t, err)
		assert.True(t, ack.Success)
	})

	t.Run("unowned service cannot be deleted", func(t *testing.T) {
		store := new(MockServiceStore)
		svc := &model.Service{ID: primitive.NewObjectID()}
		store.On("Resolve", mock.Anything, "svc-1").Return(found(svc), nil)

		_, err := newCatalog(store).Delete(context.Background(), "svc-1", model.Caller{UID: "u1", Email: "a@b.c"})

		requireHTTPError(t, err, http.StatusForbidden, "Not allowed")
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("resolve failure is a 500", func(t *testing.T) {
		store := new(MockServiceStore)
		store.On("Resolve", mock.Anything, "svc-1").Return(repository.Resolved[model.Service]{}, errors.New("timeout"))

		_, err := newCatalog(store).Delete(context.Background(), "svc-1", model.Caller{UID: "u1"})

		requireHTTPError(t, err, http.StatusInternalServerError, "Failed to delete service")
	})
}

func TestCatalogService_ListByOwner(t *testing.T) {
	store := new(MockServiceStore)

	_, err := newCatalog(store).ListByOwner(context.Background(), "")
	requireHTTPError(t, err, http.StatusBadRequest, "uid is required")

	store.On("ListByOwner", mock.Anything, "u1").Return([]model.Service{}, nil)
	got, err := newCatalog(store).ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
