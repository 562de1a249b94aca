package setup

import (
	"notes-app/app"
	"notes-app/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Public routes
	fiberApp.Get("/health", handlers.Health(application))
	fiberApp.Get("/metrics", adaptor.HTTPHandler(application.Metrics.Handler()))

	api := fiberApp.Group("/api")

	// events must be registered before :id so it is not parsed as a note id
	api.Get("/notes/events", handlers.StreamEvents(application))
	api.Get("/notes", handlers.ListNotes(application))
	api.Post("/notes", handlers.CreateNote(application))
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Post("/notes/:id/save", handlers.SaveNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
}
