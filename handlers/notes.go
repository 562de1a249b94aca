package handlers

import (
	"notes-app/app"
	"notes-app/models"
	"notes-app/services"

	"github.com/gofiber/fiber/v2"
)

// ListNotes returns every stored note
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.NoteService.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{
			"notes": notes,
			"count": len(notes),
		})
	}
}

// GetNote returns the note for the edit screen, or an empty new note when
// the id is unknown or malformed
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := coercedNoteIDParam(c)

		note, err := a.NoteService.Get(c.UserContext(), id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{
			"note":   note,
			"is_new": note.IsNew(),
		})
	}
}

// CreateNote stores a new note
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.NoteService.Create(c.UserContext(), req.Title, req.Content)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// UpdateNote replaces title and content of an existing note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteIDParam(c)
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		outcome, err := a.NoteService.Update(c.UserContext(), id, req.Title, req.Content)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update note", err)
		}
		if outcome == services.OutcomeNotFound {
			return notFound(c, "Note not found")
		}

		return success(c, fiber.Map{
			"note": models.Note{ID: id, Title: req.Title, Content: req.Content},
		})
	}
}

// SaveNote is the add/edit screen's save action: it creates the note when the
// id is new or malformed and updates it otherwise. Saving over a missing id
// changes nothing and reports outcome "not_found" without failing. A blank
// title and content is not saved and reports outcome "skipped".
func SaveNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := coercedNoteIDParam(c)

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, outcome, err := a.NoteService.Save(c.UserContext(), id, req.Title, req.Content)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save note", err)
		}

		body := fiber.Map{
			"note":    note,
			"outcome": outcome.String(),
		}
		if id == models.NewNoteID && outcome == services.OutcomeApplied {
			return created(c, body)
		}
		return success(c, body)
	}
}

// DeleteNote permanently removes a note
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteIDParam(c)
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		outcome, err := a.NoteService.Delete(c.UserContext(), id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to delete note", err)
		}
		if outcome == services.OutcomeNotFound {
			return notFound(c, "Note not found")
		}

		return success(c, fiber.Map{
			"message": "Note deleted successfully",
		})
	}
}
