package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homehero/homehero-server/internal/lib/job"
	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/repository"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type MockServiceStore struct {
	mock.Mock
}

func (m *MockServiceStore) Resolve(ctx context.Context, id string) (repository.Resolved[model.Service], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Resolved[model.Service]), args.Error(1)
}

func (m *MockServiceStore) Search(ctx context.Context, plan repository.QueryPlan) ([]model.Service, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockServiceStore) ListByOwner(ctx context.Context, uid string) ([]model.Service, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockServiceStore) Insert(ctx context.Context, svc *model.Service) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceStore) Update(ctx context.Context, key primitive.ObjectID, fields map[string]any, now time.Time) (*model.Service, error) {
	args := m.Called(ctx, key, fields, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockServiceStore) Delete(ctx context.Context, key primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Insert(ctx context.Context, b *model.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingStore) ListByCustomer(ctx context.Context, uid, email string) ([]model.Booking, error) {
	args := m.Called(ctx, uid, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateStatus(ctx context.Context, key primitive.ObjectID, status string, now time.Time) (bool, error) {
	args := m.Called(ctx, key, status, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingStore) Delete(ctx context.Context, key primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Upsert(ctx context.Context, profile model.UserProfile, now time.Time) (*model.User, bool, error) {
	args := m.Called(ctx, profile, now)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Bool(1), args.Error(2)
}

func (m *MockUserStore) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, uid string, fields map[string]any, now time.Time) (bool, error) {
	args := m.Called(ctx, uid, fields, now)
	return args.Bool(0), args.Error(1)
}

type MockTaskEnqueuer struct {
	mock.Mock
}

func (m *MockTaskEnqueuer) EnqueueWelcome(ctx context.Context, to, name string) error {
	args := m.Called(ctx, to, name)
	return args.Error(0)
}

func (m *MockTaskEnqueuer) EnqueueBookingConfirmation(ctx context.Context, p job.BookingConfirmationPayload) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func found(svc *model.Service) repository.Resolved[model.Service] {
	return repository.Resolved[model.Service]{Record: svc, Via: repository.FoundByKey}
}

func notFound() repository.Resolved[model.Service] {
	return repository.Resolved[model.Service]{Via: repository.NotFound}
}
