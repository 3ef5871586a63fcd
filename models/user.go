package models

import "time"

// User represents an account entity managed by the identity provider.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UID is the opaque unique identifier of the user. It is the value
	// surfaced to clients after a successful authentication and the
	// subject of every issued token.
	UID string `json:"uid"`

	// Email is the unique sign-in identifier for credential accounts.
	// Empty for anonymous accounts.
	Email string `json:"email,omitempty"`

	// PhoneNumber is the E.164 phone number bound to the account after a
	// completed phone verification. Empty until a code is redeemed.
	PhoneNumber string `json:"phone_number,omitempty"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never exposed via JSON and never holds plaintext.
	PasswordHash string `json:"-"`

	// Anonymous marks guest accounts created without credentials.
	Anonymous bool `json:"anonymous"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
