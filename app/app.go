package app

import (
	"log/slog"

	"notes-app/database"
	"notes-app/events"
	"notes-app/metrics"
	"notes-app/services"
	"notes-app/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo        *database.Repository
	NoteService *services.NoteService
	Broker      *events.Broker
	Metrics     *metrics.Collector
	Validator   *validator.Validator
	Logger      *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, broker *events.Broker, collector *metrics.Collector, logger *slog.Logger) *App {
	return &App{
		Repo:        repo,
		NoteService: services.NewNoteService(repo, broker, collector),
		Broker:      broker,
		Metrics:     collector,
		Validator:   validator.New(),
		Logger:      logger,
	}
}
