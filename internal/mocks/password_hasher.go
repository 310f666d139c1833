package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock type for the model.PasswordHasher type.
type PasswordHasher struct {
	mock.Mock
}

// Hash provides a mock function with given fields: plaintext
func (_m *PasswordHasher) Hash(plaintext string) (string, error) {
	ret := _m.Called(plaintext)

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(plaintext)
	} else {
		r0 = ret.Get(0).(string)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Verify provides a mock function with given fields: plaintext, hash
func (_m *PasswordHasher) Verify(plaintext string, hash string) bool {
	ret := _m.Called(plaintext, hash)

	var r0 bool
	if rf, ok := ret.Get(0).(func(string, string) bool); ok {
		r0 = rf(plaintext, hash)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// NewPasswordHasher creates a new instance of PasswordHasher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *PasswordHasher {
	m := &PasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
