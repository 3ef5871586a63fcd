package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail            = errors.New("invalid email")
	ErrPasswordTooShort        = errors.New("password is too short")
	ErrInvalidPhoneNumber      = errors.New("invalid phone number")
	ErrEmptyVerificationID     = errors.New("verification id is required")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
)
