package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVerificationNotFound     = errors.New("verification attempt was not found")
	ErrVerificationExpired      = errors.New("verification attempt is expired")
	ErrVerificationCodeMismatch = errors.New("verification code does not match")
)
