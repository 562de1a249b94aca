package setup

import (
	"context"
	"log/slog"

	"notes-app/app"
	"notes-app/database"
	"notes-app/events"
	"notes-app/metrics"

	"github.com/gofiber/fiber/v2"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "notes"

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath, "schema_version", database.SchemaVersion)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	// Create repository
	repo := database.NewRepository(db)

	// Start change broker for list refresh notifications
	broker := events.NewBroker(logger)
	broker.Start()

	collector := metrics.NewCollector(MetricsNamespace)

	// Create App with all dependencies injected
	application := app.New(repo, broker, collector, logger)
	logger.Info("application initialized")

	return application
}

// Shutdown performs graceful shutdown of all services.
// The broker stops first so open event streams end before the server drains.
func Shutdown(ctx context.Context, server *fiber.App, application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.Broker != nil {
		application.Broker.Stop()
	}

	if server != nil {
		if err := server.ShutdownWithContext(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}

	// Close database
	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
