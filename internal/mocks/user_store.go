package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notes-server/internal/model"
)

// UserStore is a mock type for the model.UserStore type.
type UserStore struct {
	mock.Mock
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, id)

	var r0 model.User
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.User); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetProfileByID provides a mock function with given fields: ctx, id
func (_m *UserStore) GetProfileByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	ret := _m.Called(ctx, id)

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Profile); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetByUsernameOrEmail provides a mock function with given fields: ctx, username, email
func (_m *UserStore) GetByUsernameOrEmail(ctx context.Context, username string, email string) (model.User, error) {
	ret := _m.Called(ctx, username, email)

	var r0 model.User
	if rf, ok := ret.Get(0).(func(context.Context, string, string) model.User); ok {
		r0 = rf(ctx, username, email)
	} else {
		r0 = ret.Get(0).(model.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Exists provides a mock function with given fields: ctx, username, email
func (_m *UserStore) Exists(ctx context.Context, username string, email string) (bool, error) {
	ret := _m.Called(ctx, username, email)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string, string) bool); ok {
		r0 = rf(ctx, username, email)
	} else {
		r0 = ret.Get(0).(bool)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Create provides a mock function with given fields: ctx, user
func (_m *UserStore) Create(ctx context.Context, user model.User) (model.Profile, error) {
	ret := _m.Called(ctx, user)

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context, model.User) model.Profile); ok {
		r0 = rf(ctx, user)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// UpdateProfile provides a mock function with given fields: ctx, id, update
func (_m *UserStore) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.Profile, error) {
	ret := _m.Called(ctx, id, update)

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.ProfileUpdate) model.Profile); ok {
		r0 = rf(ctx, id, update)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// UpdatePassword provides a mock function with given fields: ctx, id, passwordHash, revokeSession
func (_m *UserStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, revokeSession bool) error {
	ret := _m.Called(ctx, id, passwordHash, revokeSession)

	return ret.Error(0)
}

// SetRefreshToken provides a mock function with given fields: ctx, id, token
func (_m *UserStore) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	ret := _m.Called(ctx, id, token)

	return ret.Error(0)
}

// SwapRefreshToken provides a mock function with given fields: ctx, id, expected, next
func (_m *UserStore) SwapRefreshToken(ctx context.Context, id uuid.UUID, expected string, next string) error {
	ret := _m.Called(ctx, id, expected, next)

	return ret.Error(0)
}

// ClearRefreshToken provides a mock function with given fields: ctx, id
func (_m *UserStore) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// NewUserStore creates a new instance of UserStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
