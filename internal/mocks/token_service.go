package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notes-server/internal/model"
)

// TokenService is a mock type for the middleware.TokenService type.
type TokenService struct {
	mock.Mock
}

// Authenticate provides a mock function with given fields: ctx, accessToken
func (_m *TokenService) Authenticate(ctx context.Context, accessToken string) (model.Profile, error) {
	ret := _m.Called(ctx, accessToken)

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context, string) model.Profile); ok {
		r0 = rf(ctx, accessToken)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewTokenService creates a new instance of TokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
