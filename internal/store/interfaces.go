package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-flow/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	// CreateUser persists a new user record. The caller is responsible for
	// assigning the UID and CreatedAt before the call. Returns
	// [ErrEmailAlreadyExists] when the email is already taken and
	// [ErrPhoneAlreadyExists] when the phone number is already bound.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account registered under email.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByUID retrieves the account identified by uid.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByUID(ctx context.Context, uid string) (models.User, error)

	// FindUserByPhone retrieves the account bound to phoneNumber.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByPhone(ctx context.Context, phoneNumber string) (models.User, error)
}

// VerificationRepository is the data-access layer for pending phone
// verification attempts.
type VerificationRepository interface {
	// CreateAttempt persists a new verification attempt.
	CreateAttempt(ctx context.Context, attempt models.VerificationAttempt) error

	// FindAttempt retrieves the attempt identified by verificationID.
	// Returns [ErrAttemptNotFound] when no such attempt exists.
	FindAttempt(ctx context.Context, verificationID string) (models.VerificationAttempt, error)

	// DeleteAttempt removes the attempt identified by verificationID.
	// Deleting an absent attempt is not an error.
	DeleteAttempt(ctx context.Context, verificationID string) error

	// PurgeExpired removes every attempt whose expiry is before now and
	// returns the number of removed rows.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
