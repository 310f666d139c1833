package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/service"
)

// AuthService is the account and session API the handlers depend on.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.Profile, error)
	Login(ctx context.Context, params service.LoginParams) (service.Session, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, params service.UpdateAccountParams) (model.Profile, error)
}

// NoteService is the notes API the handlers depend on.
type NoteService interface {
	Create(ctx context.Context, userID uuid.UUID, params model.CreateNoteParams) (model.Note, error)
	Get(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error)
	List(ctx context.Context, userID uuid.UUID, filter model.ListNotesFilter) ([]model.Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, update model.NoteUpdate) (model.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
	Share(ctx context.Context, userID, noteID, targetID uuid.UUID) error
	Search(ctx context.Context, userID uuid.UUID, query string) ([]model.Note, error)
}

var (
	_ AuthService = (*service.Auth)(nil)
	_ NoteService = (*service.Note)(nil)
)
