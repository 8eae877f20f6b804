package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/homehero/homehero-server/internal/errs"
	"github.com/homehero/homehero-server/internal/model"
)

// UserService keeps caller profiles in sync with the identity provider.
type UserService struct {
	users UserStore
	tasks TaskEnqueuer
	clock func() time.Time
}

func NewUserService(users UserStore, tasks TaskEnqueuer) *UserService {
	return &UserService{users: users, tasks: tasks, clock: time.Now}
}

// Sync upserts the profile keyed by uid. Repeating a sync with the same
// payload leaves one record holding that payload. The first sync for a uid
// schedules a welcome email.
func (s *UserService) Sync(ctx context.Context, profile model.UserProfile) (*model.User, error) {
	if strings.TrimSpace(profile.UID) == "" || strings.TrimSpace(profile.Email) == "" {
		return nil, errs.NewBadRequestError("uid and email are required", true, nil, nil, nil)
	}

	now := s.clock().UTC()
	if profile.LastLoginAt.IsZero() {
		profile.LastLoginAt = now
	}

	user, created, err := s.users.Upsert(ctx, profile, now)
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to sync user")
	}

	if created && s.tasks != nil {
		if err := s.tasks.EnqueueWelcome(ctx, user.Email, user.Name); err != nil {
			zerolog.Ctx(ctx).Warn().
				Err(err).
				Str("uid", user.UID).
				Msg("failed to enqueue welcome email")
		}
	}

	return user, nil
}

// Get returns the profile for uid.
func (s *UserService) Get(ctx context.Context, uid string) (*model.User, error) {
	user, err := s.users.FindByUID(ctx, uid)
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to fetch user")
	}
	if user == nil {
		return nil, userNotFound()
	}
	return user, nil
}

// Update applies the editable profile fields.
func (s *UserService) Update(ctx context.Context, uid string, update model.UserUpdate) (*model.Ack, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		return nil, ErrNoValidFields
	}

	found, err := s.users.Update(ctx, uid, fields, s.clock().UTC())
	if err != nil {
		return nil, storeFailure(ctx, err, "Failed to update user")
	}
	if !found {
		return nil, userNotFound()
	}
	return &model.Ack{Success: true, Message: "User updated"}, nil
}

func userNotFound() error {
	return errs.NewNotFoundError("User not found", true, nil)
}
