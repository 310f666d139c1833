package model

import "errors"

var (
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrRefreshTokenMismatch = errors.New("refresh token mismatch")
)
