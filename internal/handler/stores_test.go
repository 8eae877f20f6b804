package handler

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homehero/homehero-server/internal/lib/job"
	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/repository"
)

// memServices is an in-memory ServiceStore. Search ignores the plan; query
// building is covered in the repository package.
type memServices struct {
	mu    sync.Mutex
	items []model.Service
}

func (m *memServices) byKey(_ context.Context, key primitive.ObjectID) (*model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.items {
		if s.ID == key {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memServices) byField(_ context.Context, value string) (*model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.items {
		if model.Deref(s.PlainID) == value && value != "" {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memServices) Resolve(ctx context.Context, id string) (repository.Resolved[model.Service], error) {
	return repository.Resolve(ctx, id, m.byKey, m.byField)
}

func (m *memServices) Search(_ context.Context, _ repository.QueryPlan) ([]model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Service{}, m.items...), nil
}

func (m *memServices) ListByOwner(_ context.Context, uid string) ([]model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Service{}
	for _, s := range m.items {
		if model.Deref(s.UID) == uid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memServices) Insert(_ context.Context, svc *model.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	svc.ID = primitive.NewObjectID()
	m.items = append(m.items, *svc)
	return nil
}

func (m *memServices) Update(_ context.Context, key primitive.ObjectID, fields map[string]any, now time.Time) (*model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID != key {
			continue
		}
		if title, ok := fields["title"].(string); ok {
			m.items[i].Title = title
		}
		if rate, ok := fields["hourly_rate"].(float64); ok {
			m.items[i].HourlyRate = rate
		}
		m.items[i].UpdatedAt = &now
		updated := m.items[i]
		return &updated, nil
	}
	return nil, nil
}

func (m *memServices) Delete(_ context.Context, key primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memBookings struct {
	mu    sync.Mutex
	items []model.Booking
}

func (m *memBookings) Insert(_ context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = primitive.NewObjectID()
	m.items = append(m.items, *b)
	return nil
}

func (m *memBookings) ListByCustomer(_ context.Context, uid, email string) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Booking{}
	for _, b := range m.items {
		if (uid != "" && model.Deref(b.UID) == uid) || (email != "" && b.UserEmail == email) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, key primitive.ObjectID, status string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == key {
			m.items[i].Status = status
			m.items[i].UpdatedAt = &now
			return true, nil
		}
	}
	return false, nil
}

func (m *memBookings) Delete(_ context.Context, key primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memUsers struct {
	mu    sync.Mutex
	items map[string]model.User
}

func (m *memUsers) Upsert(_ context.Context, p model.UserProfile, now time.Time) (*model.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = map[string]model.User{}
	}
	u, exists := m.items[p.UID]
	if !exists {
		u = model.User{ID: primitive.NewObjectID(), UID: p.UID, CreatedAt: now}
	}
	u.Email, u.Name, u.PhotoURL = p.Email, p.Name, p.PhotoURL
	u.Providers = p.Providers
	if u.Providers == nil {
		u.Providers = []string{}
	}
	u.LastLoginAt, u.UpdatedAt = p.LastLoginAt, now
	m.items[p.UID] = u
	return &u, !exists, nil
}

func (m *memUsers) FindByUID(_ context.Context, uid string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[uid]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) Update(_ context.Context, uid string, fields map[string]any, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[uid]
	if !ok {
		return false, nil
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if photo, ok := fields["photoURL"].(string); ok {
		u.PhotoURL = photo
	}
	u.UpdatedAt = now
	m.items[uid] = u
	return true, nil
}

// recordingTasks counts enqueued emails instead of talking to Redis.
type recordingTasks struct {
	mu       sync.Mutex
	welcomes []string
	confirms []job.BookingConfirmationPayload
}

func (r *recordingTasks) EnqueueWelcome(_ context.Context, to, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.welcomes = append(r.welcomes, to)
	return nil
}

func (r *recordingTasks) EnqueueBookingConfirmation(_ context.Context, p job.BookingConfirmationPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.confirms = append(r.confirms, p)
	return nil
}
