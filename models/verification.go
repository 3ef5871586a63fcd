// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VerificationAttempt is a pending phone verification stored by the provider.
// The plaintext code is never persisted: only its keyed digest is kept, and
// the attempt is deleted once redeemed or expired.
type VerificationAttempt struct {
	// VerificationID is the opaque identifier handed to the client by the
	// send operation and echoed back on redemption.
	VerificationID string `json:"verification_id"`

	// PhoneNumber is the E.164 number the code was issued for.
	PhoneNumber string `json:"phone_number"`

	// CodeDigest is the HMAC digest of the issued code.
	// Never exposed via JSON.
	CodeDigest string `json:"-"`

	// ExpiresAt is the moment after which the attempt can no longer be
	// redeemed and becomes eligible for purging.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the timestamp when the attempt was issued.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VerificationAttempt model.
func (v VerificationAttempt) TableName() string {
	return "verification_attempts"
}

// Expired reports whether the attempt can no longer be redeemed at now.
func (v VerificationAttempt) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
