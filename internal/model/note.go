package model

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// NoteStore defines persistence operations for notes.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (Note, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Note, error)
	GetSharedWith(ctx context.Context, userID uuid.UUID) ([]Note, error)
	Update(ctx context.Context, id uuid.UUID, update NoteUpdate) (Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddShare(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]Note, error)
}

// Note represents a stored note.
type Note struct {
	ID         uuid.UUID   `json:"id"`
	OwnerID    uuid.UUID   `json:"userId"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Tags       []string    `json:"tags"`
	Archived   bool        `json:"archived"`
	SharedWith []uuid.UUID `json:"sharedWith"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// IsSharedWith reports whether the note was shared with userID.
func (n Note) IsSharedWith(userID uuid.UUID) bool {
	return slices.Contains(n.SharedWith, userID)
}

// CanRead reports whether userID may read the note.
func (n Note) CanRead(userID uuid.UUID) bool {
	return n.OwnerID == userID || n.IsSharedWith(userID)
}

// CreateNoteParams contains parameters to create a note.
type CreateNoteParams struct {
	Title    string
	Content  string
	Tags     []string
	Archived bool
}

// NoteUpdate holds optional note changes. Nil fields are left untouched.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Tags     *[]string
	Archived *bool
}

// Empty reports whether the update changes nothing.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Tags == nil && u.Archived == nil
}

// ListNotesFilter selects which notes List returns.
type ListNotesFilter struct {
	// Shared lists notes other users shared with the caller instead of owned ones.
	Shared bool
}
