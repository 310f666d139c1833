package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notes-server/internal/model"
)

// ContextManager is a mock type for the model.ContextManager type.
type ContextManager struct {
	mock.Mock
}

// SetUserToContext provides a mock function with given fields: ctx, user
func (_m *ContextManager) SetUserToContext(ctx context.Context, user model.Profile) context.Context {
	ret := _m.Called(ctx, user)

	var r0 context.Context
	if rf, ok := ret.Get(0).(func(context.Context, model.Profile) context.Context); ok {
		r0 = rf(ctx, user)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	return r0
}

// GetUserFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetUserFromContext(ctx context.Context) (model.Profile, bool) {
	ret := _m.Called(ctx)

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context) model.Profile); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}
	r1 := ret.Bool(1)

	return r0, r1
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
