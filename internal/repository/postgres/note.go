package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/notes-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

const noteColumns = `id, owner_id, title, content, tags, archived, shared_with, created_at, updated_at`

type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

func scanNote(row pgx.Row) (model.Note, error) {
	var note model.Note
	err := row.Scan(
		&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.Tags,
		&note.Archived, &note.SharedWith, &note.CreatedAt, &note.UpdatedAt,
	)
	return note, err
}

func collectNotes(rows pgx.Rows) ([]model.Note, error) {
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	query := `INSERT INTO notes (id, owner_id, title, content, tags, archived)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + noteColumns

	saved, err := scanNote(r.db.QueryRow(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Content, note.Tags, note.Archived,
	))
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return saved, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	note, err := scanNote(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes, err := collectNotes(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) GetSharedWith(ctx context.Context, userID uuid.UUID) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE $1 = ANY(shared_with) ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared notes: %w", err)
	}

	notes, err := collectNotes(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan shared notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, id uuid.UUID, update model.NoteUpdate) (model.Note, error) {
	query := `UPDATE notes SET
				title = COALESCE($2, title),
				content = COALESCE($3, content),
				tags = COALESCE($4, tags),
				archived = COALESCE($5, archived),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + noteColumns

	var tags []string
	if update.Tags != nil {
		tags = *update.Tags
		if tags == nil {
			tags = []string{}
		}
	}

	note, err := scanNote(r.db.QueryRow(ctx, query, id, update.Title, update.Content, tags, update.Archived))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM notes WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// AddShare appends userID to the note's share list. Returns ErrAlreadyExists if it is already there.
func (r *NoteRepository) AddShare(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	const query = `UPDATE notes SET shared_with = array_append(shared_with, $2), updated_at = NOW()
				   WHERE id = $1 AND NOT ($2 = ANY(shared_with))`

	cmd, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to share note: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return model.ErrAlreadyExists
	}
	return nil
}

func (r *NoteRepository) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]model.Note, error) {
	sql := `SELECT ` + noteColumns + ` FROM notes
			WHERE owner_id = $1
			  AND (title ILIKE $2 OR content ILIKE $2
			       OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $2))
			ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql, ownerID, likePattern(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	notes, err := collectNotes(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan search results: %w", err)
	}
	return notes, nil
}
