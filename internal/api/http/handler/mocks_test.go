package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/service"
)

type mockAuthService struct {
	mock.Mock
}

func newMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockAuthService {
	m := &mockAuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockAuthService) Register(ctx context.Context, params service.RegisterParams) (model.Profile, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(model.Profile), ret.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, params service.LoginParams) (service.Session, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(service.Session), ret.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	ret := m.Called(ctx, refreshToken)
	return ret.Get(0).(model.TokenPair), ret.Error(1)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return m.Called(ctx, userID, current, next).Error(0)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(model.Profile), ret.Error(1)
}

func (m *mockAuthService) UpdateAccount(ctx context.Context, userID uuid.UUID, params service.UpdateAccountParams) (model.Profile, error) {
	ret := m.Called(ctx, userID, params)
	return ret.Get(0).(model.Profile), ret.Error(1)
}

type mockNoteService struct {
	mock.Mock
}

func newMockNoteService(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockNoteService {
	m := &mockNoteService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func notes(ret mock.Arguments) []model.Note {
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).([]model.Note)
}

func (m *mockNoteService) Create(ctx context.Context, userID uuid.UUID, params model.CreateNoteParams) (model.Note, error) {
	ret := m.Called(ctx, userID, params)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (m *mockNoteService) Get(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	ret := m.Called(ctx, userID, noteID)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (m *mockNoteService) List(ctx context.Context, userID uuid.UUID, filter model.ListNotesFilter) ([]model.Note, error) {
	ret := m.Called(ctx, userID, filter)
	return notes(ret), ret.Error(1)
}

func (m *mockNoteService) Update(ctx context.Context, userID, noteID uuid.UUID, update model.NoteUpdate) (model.Note, error) {
	ret := m.Called(ctx, userID, noteID, update)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (m *mockNoteService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	return m.Called(ctx, userID, noteID).Error(0)
}

func (m *mockNoteService) Share(ctx context.Context, userID, noteID, targetID uuid.UUID) error {
	return m.Called(ctx, userID, noteID, targetID).Error(0)
}

func (m *mockNoteService) Search(ctx context.Context, userID uuid.UUID, query string) ([]model.Note, error) {
	ret := m.Called(ctx, userID, query)
	return notes(ret), ret.Error(1)
}
