package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/homehero/homehero-server/internal/lib/email"
)

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(ctx, p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}

func (j *JobService) handleBookingConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p BookingConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal booking confirmation payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", "booking_confirmation").
		Str("to", p.To).
		Str("booking_id", p.BookingID).
		Logger()

	logger.Info().Msg("Processing booking confirmation task")

	err := j.mailer.SendBookingConfirmationEmail(ctx, p.To, email.BookingConfirmation{
		ServiceTitle: p.ServiceTitle,
		Category:     p.Category,
		BookingDate:  p.BookingDate,
		Price:        p.Price,
		Location:     p.Location,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send booking confirmation")
		return err
	}

	logger.Info().Msg("Successfully sent booking confirmation")
	return nil
}
