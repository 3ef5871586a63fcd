// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import "errors"

// Failure kinds carried inside [Result] by gateway implementations. Flow code
// never re-classifies them; it only surfaces their description to the user.
// Callers that need to branch on a kind should match with [errors.Is].
var (
	// ErrInvalidCredentials indicates a malformed or rejected email, password,
	// or verification code.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound indicates that no account exists for the sign-in identity.
	ErrNotFound = errors.New("account not found")

	// ErrProviderRejected indicates a generic provider-side refusal, for
	// example anonymous authentication being disabled.
	ErrProviderRejected = errors.New("rejected by identity provider")

	// ErrNetworkFailure indicates a transport or timeout failure reaching the
	// identity provider.
	ErrNetworkFailure = errors.New("identity provider unreachable")

	// ErrVerificationInvalid indicates an unknown or expired verification
	// identifier, or a code that does not match the issued one.
	ErrVerificationInvalid = errors.New("verification id or code is expired or invalid")
)
