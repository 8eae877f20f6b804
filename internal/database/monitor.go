package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// newCommandLogger returns a command monitor that logs every driver command.
// Commands slower than slowThreshold are logged at warn level.
func newCommandLogger(logger *zerolog.Logger, slowThreshold time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, evt *event.CommandStartedEvent) {
			logger.Debug().
				Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Str("body", evt.Command.String()).
				Msg("store command started")
		},
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			e := logger.Debug()
			if slowThreshold > 0 && evt.Duration > slowThreshold {
				e = logger.Warn().Bool("slow", true)
			}
			e.Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Dur("duration", evt.Duration).
				Msg("store command succeeded")
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			logger.Error().
				Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Dur("duration", evt.Duration).
				Str("failure", evt.Failure).
				Msg("store command failed")
		},
	}
}
