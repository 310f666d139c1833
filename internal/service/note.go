package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/apierrors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

type Note struct {
	noteStore model.NoteStore
	userStore model.UserStore
	logger    *logger.Logger
}

func NewNote(noteStore model.NoteStore, userStore model.UserStore, logger *logger.Logger) *Note {
	return &Note{
		noteStore: noteStore,
		userStore: userStore,
		logger:    logger,
	}
}

func (s *Note) Create(ctx context.Context, userID uuid.UUID, params model.CreateNoteParams) (model.Note, error) {
	title := strings.TrimSpace(params.Title)
	content := strings.TrimSpace(params.Content)
	if title == "" || content == "" {
		return model.Note{}, apierrors.NewErrBadRequest("Required fields are missing")
	}

	note, err := s.noteStore.Create(ctx, model.Note{
		ID:       uuid.New(),
		OwnerID:  userID,
		Title:    title,
		Content:  content,
		Tags:     params.Tags,
		Archived: params.Archived,
	})
	if err != nil {
		s.logger.Error("Note service: failed to create note",
			"user_id", userID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Debug("Note service: note created",
		"user_id", userID,
		"note_id", note.ID)

	return note, nil
}

// Get returns a note the caller owns or that was shared with them.
// Notes the caller cannot read are reported as missing.
func (s *Note) Get(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, noteID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, apierrors.NewErrNoteNotFound()
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	if !note.CanRead(userID) {
		return model.Note{}, apierrors.NewErrNoteNotFound()
	}

	return note, nil
}

func (s *Note) List(ctx context.Context, userID uuid.UUID, filter model.ListNotesFilter) ([]model.Note, error) {
	var (
		notes []model.Note
		err   error
	)
	if filter.Shared {
		notes, err = s.noteStore.GetSharedWith(ctx, userID)
	} else {
		notes, err = s.noteStore.GetByOwnerID(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// owned loads a note and checks that userID owns it.
func (s *Note) owned(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, noteID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, apierrors.NewErrNoteNotFound()
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}
	if note.OwnerID != userID {
		return model.Note{}, apierrors.NewErrNoteNotFound()
	}
	return note, nil
}

func (s *Note) Update(ctx context.Context, userID, noteID uuid.UUID, update model.NoteUpdate) (model.Note, error) {
	note, err := s.owned(ctx, userID, noteID)
	if err != nil {
		return model.Note{}, err
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		update.Title = nil
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		update.Content = nil
	}
	if update.Empty() {
		return note, nil
	}

	updated, err := s.noteStore.Update(ctx, noteID, update)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, apierrors.NewErrNoteNotFound()
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

func (s *Note) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	if _, err := s.owned(ctx, userID, noteID); err != nil {
		return err
	}

	err := s.noteStore.Delete(ctx, noteID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoteNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Debug("Note service: note deleted",
		"user_id", userID,
		"note_id", noteID)

	return nil
}

func (s *Note) Share(ctx context.Context, userID, noteID, targetID uuid.UUID) error {
	note, err := s.owned(ctx, userID, noteID)
	if err != nil {
		return err
	}

	if targetID == userID {
		return apierrors.NewErrBadRequest("Cannot share a note with yourself")
	}

	_, err = s.userStore.GetProfileByID(ctx, targetID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNotFound("User not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if note.IsSharedWith(targetID) {
		return apierrors.NewErrBadRequest("Note is already shared with this user")
	}

	err = s.noteStore.AddShare(ctx, noteID, targetID)
	if errors.Is(err, model.ErrAlreadyExists) {
		return apierrors.NewErrBadRequest("Note is already shared with this user")
	}
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoteNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to share note: %w", err)
	}

	s.logger.Info("Note service: note shared",
		"user_id", userID,
		"note_id", noteID,
		"target_id", targetID)

	return nil
}

func (s *Note) Search(ctx context.Context, userID uuid.UUID, query string) ([]model.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apierrors.NewErrBadRequest("Query parameter is required")
	}

	notes, err := s.noteStore.Search(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}
