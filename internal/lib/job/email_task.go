package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names stored in Redis. Asynq routes on these strings.
const (
	TaskWelcome             = "email:welcome"
	TaskBookingConfirmation = "email:booking_confirmation"
)

// WelcomeEmailPayload is the payload of the welcome email task.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// BookingConfirmationPayload is the payload of the booking confirmation task.
type BookingConfirmationPayload struct {
	To           string  `json:"to"`
	BookingID    string  `json:"booking_id"`
	ServiceTitle string  `json:"service_title"`
	Category     string  `json:"category"`
	BookingDate  string  `json:"booking_date"`
	Price        float64 `json:"price"`
	Location     string  `json:"location,omitempty"`
}

// NewWelcomeEmailTask builds a low-priority welcome email task.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to, Name: name})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewBookingConfirmationTask builds a booking confirmation task. The
// booking id doubles as the task id so a booking is confirmed at most once.
func NewBookingConfirmationTask(p BookingConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Queue("critical"),
		asynq.Timeout(30 * time.Second),
	}
	if p.BookingID != "" {
		opts = append(opts, asynq.TaskID(TaskBookingConfirmation+":"+p.BookingID))
	}

	return asynq.NewTask(TaskBookingConfirmation, payload, opts...), nil
}
