// Package database establishes the connection to the MongoDB document store.
//
// It owns the single long-lived client shared by every request and wires
// command instrumentation into the driver:
//   - building client options from config (pool sizes, stable API)
//   - New Relic datastore segments (nrmongo)
//   - local command logging through zerolog
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/homehero/homehero-server/internal/config"
	loggerConfig "github.com/homehero/homehero-server/internal/logger"
)

// Collection names.
const (
	ServicesCollection = "services"
	BookingsCollection = "bookings"
	UsersCollection    = "users"
)

// DatabasePingTimeout is the number of seconds to wait for the initial ping
// before the store is considered unreachable.
const DatabasePingTimeout = 10

// Database wraps the MongoDB client and the selected database handle.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// New connects to MongoDB with instrumentation.
//
// Behavior:
//   - Apply URI, pool sizes and the strict stable API
//   - Log every command in the local env
//   - Wrap the monitor with New Relic when it is enabled
//   - Connect, ping, and return Database
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	clientOptions := options.Client().
		ApplyURI(cfg.Database.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.Database.ConnectTimeout) * time.Second)

	if cfg.Database.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.Database.MaxPoolSize)
	}
	if cfg.Database.MinPoolSize > 0 {
		clientOptions.SetMinPoolSize(cfg.Database.MinPoolSize)
	}

	var monitor *event.CommandMonitor

	// Noisy, so only in local.
	if cfg.Primary.Env == "local" {
		storeLogger := loggerConfig.NewStoreLogger(logger.GetLevel())
		monitor = newCommandLogger(&storeLogger, cfg.Observability.Logging.SlowQueryThreshold)
	}

	// nrmongo chains onto the original monitor, so both run.
	if loggerService != nil && loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}

	if monitor != nil {
		clientOptions.SetMonitor(monitor)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to the database")

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Database.Name),
		log:    logger,
	}, nil
}

// Ping checks that the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to the named collection.
func (db *Database) Collection(name string) *mongo.Collection {
	return db.DB.Collection(name)
}

// Close disconnects the client, waiting for in-flight operations.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection")

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()

	return db.Client.Disconnect(ctx)
}
