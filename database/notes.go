package database

import (
	"context"
	"database/sql"
	"fmt"

	"notes-app/models"
)

// ==================== NOTE OPERATIONS ====================

// CreateNote inserts a note and returns the id the store assigned.
// On failure the id is models.NewNoteID.
func (r *Repository) CreateNote(ctx context.Context, title, content string) (int64, error) {
	id := models.NewNoteID

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `
			INSERT INTO notes (title, content) VALUES (?, ?)
		`, title, content)
		if err != nil {
			return err
		}

		inserted, err := res.LastInsertId()
		if err != nil {
			return err
		}
		id = inserted
		return nil
	})
	if err != nil {
		return models.NewNoteID, fmt.Errorf("failed to create note: %w", err)
	}

	return id, nil
}

// ListNotes returns every stored note ordered by id
func (r *Repository) ListNotes(ctx context.Context) ([]models.Note, error) {
	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT id, title, content
			FROM notes
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			note, err := scanNote(rows)
			if err != nil {
				return err
			}
			notes = append(notes, note)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// GetNote retrieves a single note by id. A missing note is (nil, nil).
func (r *Repository) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	var note *models.Note

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, `
			SELECT id, title, content
			FROM notes
			WHERE id = ?
		`, id)

		found, err := scanNote(row)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		note = &found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get note %d: %w", id, err)
	}

	return note, nil
}

// UpdateNote replaces title and content of the row with note.ID.
// It reports false when no row matched; that is not an error.
func (r *Repository) UpdateNote(ctx context.Context, note *models.Note) (bool, error) {
	var affected int64

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `
			UPDATE notes SET
				title = ?,
				content = ?
			WHERE id = ?
		`, note.Title, note.Content, note.ID)
		if err != nil {
			return err
		}

		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to update note %d: %w", note.ID, err)
	}

	return affected > 0, nil
}

// DeleteNote permanently removes the row with id.
// It reports false when no row matched; that is not an error.
func (r *Repository) DeleteNote(ctx context.Context, id int64) (bool, error) {
	var affected int64

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `
			DELETE FROM notes
			WHERE id = ?
		`, id)
		if err != nil {
			return err
		}

		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete note %d: %w", id, err)
	}

	return affected > 0, nil
}

// CountNotes returns the number of stored notes
func (r *Repository) CountNotes(ctx context.Context) (int, error) {
	var count int

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}

	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanNote reads one row. Title and content may be NULL in files written by
// other tools; they read back as empty strings.
func scanNote(s scanner) (models.Note, error) {
	var note models.Note
	var title, content sql.NullString

	if err := s.Scan(&note.ID, &title, &content); err != nil {
		return models.Note{}, err
	}

	note.Title = title.String
	note.Content = content.String
	return note, nil
}
