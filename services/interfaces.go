package services

import (
	"context"
	"time"

	"notes-app/events"
	"notes-app/models"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	CreateNote(ctx context.Context, title, content string) (int64, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id int64) (*models.Note, error)
	UpdateNote(ctx context.Context, note *models.Note) (bool, error)
	DeleteNote(ctx context.Context, id int64) (bool, error)
}

// Publisher receives a change event after every applied mutation
type Publisher interface {
	Publish(ev events.Event)
}

// Recorder receives one observation per store operation
// Interface for testability - production uses metrics.Collector
type Recorder interface {
	Observe(operation, outcome string, elapsed time.Duration)
	SetNotes(count int)
}
