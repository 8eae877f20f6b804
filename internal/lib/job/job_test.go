package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/homehero/homehero-server/internal/lib/email"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcomeEmail(ctx context.Context, to, name string) error {
	args := m.Called(ctx, to, name)
	return args.Error(0)
}

func (m *MockMailer) SendBookingConfirmationEmail(ctx context.Context, to string, b email.BookingConfirmation) error {
	args := m.Called(ctx, to, b)
	return args.Error(0)
}

func newTestJobService(mailer Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: mailer, logger: &logger}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("a@x.io", "Ana")
	require.NoError(t, err)

	assert.Equal(t, TaskWelcome, task.Type())

	var p WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, WelcomeEmailPayload{To: "a@x.io", Name: "Ana"}, p)
}

func TestNewBookingConfirmationTask(t *testing.T) {
	task, err := NewBookingConfirmationTask(BookingConfirmationPayload{
		To:           "c@x.io",
		BookingID:    "b1",
		ServiceTitle: "Deep Clean",
		Price:        25,
	})
	require.NoError(t, err)
	assert.Equal(t, TaskBookingConfirmation, task.Type())
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	mailer := new(MockMailer)
	j := newTestJobService(mailer)

	task, err := NewWelcomeEmailTask("a@x.io", "Ana")
	require.NoError(t, err)

	mailer.On("SendWelcomeEmail", mock.Anything, "a@x.io", "Ana").Return(nil)

	assert.NoError(t, j.handleWelcomeEmailTask(context.Background(), task))
	mailer.AssertExpectations(t)
}

func TestHandleWelcomeEmailTask_SendFails(t *testing.T) {
	mailer := new(MockMailer)
	j := newTestJobService(mailer)

	task, err := NewWelcomeEmailTask("a@x.io", "Ana")
	require.NoError(t, err)

	mailer.On("SendWelcomeEmail", mock.Anything, "a@x.io", "Ana").Return(errors.New("provider down"))

	assert.Error(t, j.handleWelcomeEmailTask(context.Background(), task))
}

func TestHandleBookingConfirmationTask(t *testing.T) {
	mailer := new(MockMailer)
	j := newTestJobService(mailer)

	task, err := NewBookingConfirmationTask(BookingConfirmationPayload{
		To:           "c@x.io",
		BookingID:    "b1",
		ServiceTitle: "Deep Clean",
		Category:     "Cleaning",
		BookingDate:  "2026-03-14",
		Price:        25,
	})
	require.NoError(t, err)

	mailer.On("SendBookingConfirmationEmail", mock.Anything, "c@x.io", email.BookingConfirmation{
		ServiceTitle: "Deep Clean",
		Category:     "Cleaning",
		BookingDate:  "2026-03-14",
		Price:        25,
	}).Return(nil)

	assert.NoError(t, j.handleBookingConfirmationTask(context.Background(), task))
	mailer.AssertExpectations(t)
}

func TestHandleTask_BadPayloadSkipsRetry(t *testing.T) {
	j := newTestJobService(new(MockMailer))

	err := j.handleWelcomeEmailTask(context.Background(), asynq.NewTask(TaskWelcome, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
