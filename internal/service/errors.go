package service

import "errors"

var (
	ErrInvalidLength       = errors.New("length must be at least 1")
	ErrNoPasswordToEncrypt = errors.New("no password to encrypt")
	ErrNoEncryptedPassword = errors.New("no encrypted password")
	ErrBackendRejected     = errors.New("backend rejected request")

	ErrTokenSigningDisabled    = errors.New("relay token signing is disabled")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
