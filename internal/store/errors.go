package store

import "errors"

// Well-known repository failures, matched by callers with [errors.Is].
var (
	// ErrEmailAlreadyExists: registration hit a user with the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPhoneAlreadyExists: the phone number is bound to another account.
	ErrPhoneAlreadyExists = errors.New("phone number already exists")

	// ErrNoUserWasFound: a lookup expected to match a user came back empty.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAttemptNotFound: the verification attempt does not exist.
	ErrAttemptNotFound = errors.New("verification attempt was not found")
)

// SQL-level failures wrapped by repository methods before any domain logic
// applies.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")
)
