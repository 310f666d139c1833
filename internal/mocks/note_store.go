package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notes-server/internal/model"
)

// NoteStore is a mock type for the model.NoteStore type.
type NoteStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, note
func (_m *NoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	ret := _m.Called(ctx, note)

	var r0 model.Note
	if rf, ok := ret.Get(0).(func(context.Context, model.Note) model.Note); ok {
		r0 = rf(ctx, note)
	} else {
		r0 = ret.Get(0).(model.Note)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *NoteStore) GetByID(ctx context.Context, id uuid.UUID) (model.Note, error) {
	ret := _m.Called(ctx, id)

	var r0 model.Note
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Note); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Note)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetByOwnerID provides a mock function with given fields: ctx, ownerID
func (_m *NoteStore) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 []model.Note
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []model.Note); ok {
		r0 = rf(ctx, ownerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Note)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetSharedWith provides a mock function with given fields: ctx, userID
func (_m *NoteStore) GetSharedWith(ctx context.Context, userID uuid.UUID) ([]model.Note, error) {
	ret := _m.Called(ctx, userID)

	var r0 []model.Note
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []model.Note); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Note)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, id, update
func (_m *NoteStore) Update(ctx context.Context, id uuid.UUID, update model.NoteUpdate) (model.Note, error) {
	ret := _m.Called(ctx, id, update)

	var r0 model.Note
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.NoteUpdate) model.Note); ok {
		r0 = rf(ctx, id, update)
	} else {
		r0 = ret.Get(0).(model.Note)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *NoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// AddShare provides a mock function with given fields: ctx, id, userID
func (_m *NoteStore) AddShare(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	ret := _m.Called(ctx, id, userID)

	return ret.Error(0)
}

// Search provides a mock function with given fields: ctx, ownerID, query
func (_m *NoteStore) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]model.Note, error) {
	ret := _m.Called(ctx, ownerID, query)

	var r0 []model.Note
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) []model.Note); ok {
		r0 = rf(ctx, ownerID, query)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Note)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewNoteStore creates a new instance of NoteStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNoteStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *NoteStore {
	m := &NoteStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
