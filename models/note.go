package models

// NewNoteID identifies a note that has not been stored yet.
// The store also returns it from create when the insert did not apply.
const NewNoteID int64 = -1

type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// IsNew reports whether the note has no stored row behind it
func (n Note) IsNew() bool {
	return n.ID == NewNoteID
}

type CreateNoteRequest struct {
	Title   string `json:"title" form:"title" validate:"max=200,validutf8"`
	Content string `json:"content" form:"content" validate:"max=100000,validutf8"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title" form:"title" validate:"max=200,validutf8"`
	Content string `json:"content" form:"content" validate:"max=100000,validutf8"`
}
