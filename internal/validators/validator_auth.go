package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-flow/models"
)

const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldPhoneNumber    = "phone_number"
	FieldVerificationID = "verification_id"
	FieldCode           = "code"
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 6

	// CodeLength is the exact length of an issued verification code.
	CodeLength = 6

	maxEmailLength = 254
	minPhoneDigits = 8
	maxPhoneDigits = 15
)

type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.PhoneSendRequest:
		return v.validatePhoneSendRequest(ctx, value, fields...)
	case *models.PhoneSendRequest:
		return v.validatePhoneSendRequest(ctx, *value, fields...)

	case models.PhoneVerifyRequest:
		return v.validatePhoneVerifyRequest(ctx, value, fields...)
	case *models.PhoneVerifyRequest:
		return v.validatePhoneVerifyRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(credentials.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validatePhoneSendRequest(_ context.Context, request models.PhoneSendRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhoneNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldPhoneNumber:
			if !isValidPhoneNumber(request.PhoneNumber) {
				return ErrInvalidPhoneNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validatePhoneVerifyRequest(_ context.Context, request models.PhoneVerifyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVerificationID, FieldCode}
	}

	for _, f := range fields {
		switch f {
		case FieldVerificationID:
			if request.VerificationID == "" {
				return ErrEmptyVerificationID
			}
		case FieldCode:
			if !isValidCode(request.Code) {
				return ErrInvalidVerificationCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidEmail(email string) bool {
	if email == "" || len(email) > maxEmailLength {
		return false
	}
	if strings.ContainsAny(email, " \t") {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") ||
		strings.HasPrefix(domain, ".") ||
		strings.HasSuffix(domain, ".") {
		return false
	}

	return true
}

// isValidPhoneNumber accepts E.164-shaped numbers: an optional leading plus
// followed by digits only.
func isValidPhoneNumber(phone string) bool {
	digits := strings.TrimPrefix(phone, "+")
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func isValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}

	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
