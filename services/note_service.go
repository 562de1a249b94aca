package services

import (
	"context"
	"time"

	"notes-app/events"
	"notes-app/models"
)

// Outcome is the result of a mutation that targets an existing note
type Outcome int

const (
	// OutcomeApplied means a row matched and was changed
	OutcomeApplied Outcome = iota
	// OutcomeNotFound means no row matched; nothing changed
	OutcomeNotFound
	// OutcomeSkipped means there was nothing to save and the store was not touched
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Err converts the outcome for callers that treat a missing note as a failure
func (o Outcome) Err() error {
	if o == OutcomeNotFound {
		return ErrNoteNotFound
	}
	return nil
}

func outcomeOf(found bool) Outcome {
	if found {
		return OutcomeApplied
	}
	return OutcomeNotFound
}

// NoteService handles business logic for notes
type NoteService struct {
	repo      NoteRepository
	publisher Publisher
	recorder  Recorder
}

// NewNoteService creates a new note service.
// publisher and recorder may be nil.
func NewNoteService(repo NoteRepository, publisher Publisher, recorder Recorder) *NoteService {
	return &NoteService{
		repo:      repo,
		publisher: publisher,
		recorder:  recorder,
	}
}

// Create stores a new note and returns it with its assigned id
func (ns *NoteService) Create(ctx context.Context, title, content string) (*models.Note, error) {
	start := time.Now()

	id, err := ns.repo.CreateNote(ctx, title, content)
	if err != nil {
		ns.observe("create", "error", start)
		return nil, err
	}
	ns.observe("create", OutcomeApplied.String(), start)

	ns.publish(events.KindCreated, id)
	return &models.Note{ID: id, Title: title, Content: content}, nil
}

// List returns every stored note
func (ns *NoteService) List(ctx context.Context) ([]models.Note, error) {
	start := time.Now()

	notes, err := ns.repo.ListNotes(ctx)
	if err != nil {
		ns.observe("list", "error", start)
		return nil, err
	}
	ns.observe("list", OutcomeApplied.String(), start)

	if ns.recorder != nil {
		ns.recorder.SetNotes(len(notes))
	}
	return notes, nil
}

// Get retrieves a note for the edit flow.
// A new or missing id yields an empty note carrying models.NewNoteID.
func (ns *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	if id == models.NewNoteID {
		return &models.Note{ID: models.NewNoteID}, nil
	}

	start := time.Now()

	note, err := ns.repo.GetNote(ctx, id)
	if err != nil {
		ns.observe("get", "error", start)
		return nil, err
	}

	// If note doesn't exist, return empty note structure
	if note == nil {
		ns.observe("get", OutcomeNotFound.String(), start)
		return &models.Note{ID: models.NewNoteID}, nil
	}

	ns.observe("get", OutcomeApplied.String(), start)
	return note, nil
}

// Save creates the note when id is models.NewNoteID and updates it otherwise.
// Updating a missing id changes nothing and reports OutcomeNotFound.
// A blank title and content is not written at all and reports OutcomeSkipped.
func (ns *NoteService) Save(ctx context.Context, id int64, title, content string) (*models.Note, Outcome, error) {
	if title == "" && content == "" {
		ns.observe("save", OutcomeSkipped.String(), time.Now())
		return nil, OutcomeSkipped, nil
	}

	if id == models.NewNoteID {
		note, err := ns.Create(ctx, title, content)
		if err != nil {
			return nil, OutcomeNotFound, err
		}
		return note, OutcomeApplied, nil
	}

	outcome, err := ns.Update(ctx, id, title, content)
	if err != nil {
		return nil, outcome, err
	}
	return &models.Note{ID: id, Title: title, Content: content}, outcome, nil
}

// Update replaces title and content of the note with id
func (ns *NoteService) Update(ctx context.Context, id int64, title, content string) (Outcome, error) {
	start := time.Now()

	found, err := ns.repo.UpdateNote(ctx, &models.Note{ID: id, Title: title, Content: content})
	if err != nil {
		ns.observe("update", "error", start)
		return OutcomeNotFound, err
	}

	outcome := outcomeOf(found)
	ns.observe("update", outcome.String(), start)

	if outcome == OutcomeApplied {
		ns.publish(events.KindUpdated, id)
	}
	return outcome, nil
}

// Delete removes the note with id
func (ns *NoteService) Delete(ctx context.Context, id int64) (Outcome, error) {
	start := time.Now()

	found, err := ns.repo.DeleteNote(ctx, id)
	if err != nil {
		ns.observe("delete", "error", start)
		return OutcomeNotFound, err
	}

	outcome := outcomeOf(found)
	ns.observe("delete", outcome.String(), start)

	if outcome == OutcomeApplied {
		ns.publish(events.KindDeleted, id)
	}
	return outcome, nil
}

func (ns *NoteService) publish(kind events.Kind, id int64) {
	if ns.publisher == nil {
		return
	}
	ns.publisher.Publish(events.Event{Kind: kind, NoteID: id})
}

func (ns *NoteService) observe(operation, outcome string, start time.Time) {
	if ns.recorder == nil {
		return
	}
	ns.recorder.Observe(operation, outcome, time.Since(start))
}
