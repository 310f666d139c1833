package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notes-server/internal/model"
)

// TokenManager is a mock type for the model.TokenManager type.
type TokenManager struct {
	mock.Mock
}

// IssueAccess provides a mock function with given fields: claims
func (_m *TokenManager) IssueAccess(claims model.AccessClaims) (string, error) {
	ret := _m.Called(claims)

	var r0 string
	if rf, ok := ret.Get(0).(func(model.AccessClaims) string); ok {
		r0 = rf(claims)
	} else {
		r0 = ret.Get(0).(string)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// IssueRefresh provides a mock function with given fields: claims
func (_m *TokenManager) IssueRefresh(claims model.RefreshClaims) (string, error) {
	ret := _m.Called(claims)

	var r0 string
	if rf, ok := ret.Get(0).(func(model.RefreshClaims) string); ok {
		r0 = rf(claims)
	} else {
		r0 = ret.Get(0).(string)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// VerifyAccess provides a mock function with given fields: token
func (_m *TokenManager) VerifyAccess(token string) (model.AccessClaims, error) {
	ret := _m.Called(token)

	var r0 model.AccessClaims
	if rf, ok := ret.Get(0).(func(string) model.AccessClaims); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.AccessClaims)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// VerifyRefresh provides a mock function with given fields: token
func (_m *TokenManager) VerifyRefresh(token string) (model.RefreshClaims, error) {
	ret := _m.Called(token)

	var r0 model.RefreshClaims
	if rf, ok := ret.Get(0).(func(string) model.RefreshClaims); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.RefreshClaims)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// AccessTTL provides a mock function with given fields:
func (_m *TokenManager) AccessTTL() time.Duration {
	ret := _m.Called()

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// RefreshTTL provides a mock function with given fields:
func (_m *TokenManager) RefreshTTL() time.Duration {
	ret := _m.Called()

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// NewTokenManager creates a new instance of TokenManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
