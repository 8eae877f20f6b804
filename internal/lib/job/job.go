// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: tasks are enqueued with an
// asynq.Client and processed by the handlers registered on an
// asynq.Server running in the same process.
package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/homehero/homehero-server/internal/config"
	"github.com/homehero/homehero-server/internal/lib/email"
)

// Mailer sends the emails produced by job handlers.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendBookingConfirmationEmail(ctx context.Context, to string, b email.BookingConfirmation) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	mailer Mailer
	logger *zerolog.Logger
}

// NewJobService creates a JobService on the Redis instance from cfg.
//
// Queue weights give booking confirmations ("critical") the larger share
// of the ten workers; welcome emails run on "low".
func NewJobService(logger *zerolog.Logger, cfg *config.Config, mailer Mailer) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error().Err(err).Str("type", task.Type()).Msg("job failed")
		}),
	})

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mailer: mailer,
		logger: logger,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskBookingConfirmation, j.handleBookingConfirmationTask)
	return mux
}

// Start launches the workers in the background and returns.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.Mux())
}

// Stop waits for in-flight tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// EnqueueWelcome schedules the welcome email for a newly synced user.
func (j *JobService) EnqueueWelcome(ctx context.Context, to, name string) error {
	task, err := NewWelcomeEmailTask(to, name)
	if err != nil {
		return err
	}
	return j.enqueue(ctx, task)
}

// EnqueueBookingConfirmation schedules the confirmation email for a booking.
func (j *JobService) EnqueueBookingConfirmation(ctx context.Context, p BookingConfirmationPayload) error {
	task, err := NewBookingConfirmationTask(p)
	if err != nil {
		return err
	}
	return j.enqueue(ctx, task)
}

func (j *JobService) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Debug().
		Str("type", task.Type()).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("task enqueued")
	return nil
}
