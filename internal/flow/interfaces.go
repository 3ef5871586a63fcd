// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import "context"

//go:generate mockgen -source=interfaces.go -destination=identity_gateway_mock_test.go -package=flow -self_package=github.com/MKhiriev/go-auth-flow/internal/flow

// IdentityGateway is the stateless façade over the external identity provider.
// Every operation is independent and reentrant; the only state the provider
// keeps across calls is its own session. Implementations are responsible for
// transport, serialisation, and mapping provider failures to the sentinel
// error kinds defined in this package. They never raise a fault across the
// gateway boundary, failures always travel inside a [Result].
type IdentityGateway interface {
	// IsSessionActive reports whether the provider already holds a live
	// session for this client. It is a plain query and never fails: any
	// transport problem is reported as "no session".
	IsSessionActive(ctx context.Context) bool

	// SignUp creates a password account for the given email and returns the
	// provider-assigned opaque user identifier. Failure kinds:
	// [ErrInvalidCredentials], [ErrProviderRejected], [ErrNetworkFailure].
	SignUp(ctx context.Context, email, password string) Result[string]

	// SignIn authenticates an existing password account and returns the
	// opaque user identifier. Failure kinds: [ErrInvalidCredentials],
	// [ErrNotFound], [ErrNetworkFailure].
	SignIn(ctx context.Context, email, password string) Result[string]

	// SignInAnonymously creates or resumes an anonymous session and returns
	// the opaque user identifier. Failure kinds: [ErrProviderRejected] (the
	// provider has anonymous auth disabled), [ErrNetworkFailure].
	SignInAnonymously(ctx context.Context) Result[string]

	// SignOut ends the provider session. Fire-and-forget: local session state
	// is discarded regardless of whether the provider acknowledged the call.
	SignOut(ctx context.Context)

	// SendVerificationCode starts the phone verification sub-protocol for
	// phoneNumber and returns a finite event sequence. The sequence may carry,
	// in provider order, zero or more of:
	//   - Success(""): auto-verification, the number was confirmed without
	//     user entry and no identifier is needed downstream.
	//   - Success(id): code sent, id is the verification identifier to
	//     redeem later via VerifyCode.
	//   - Failure(...): an in-band verification failure.
	// The channel always closes when the invocation terminates. Cancelling ctx
	// stops the sequence and releases all provider-side resources. A fixed
	// upstream timeout (60 seconds by default) bounds the wait for a first
	// provider event; on expiry a failure event is delivered through the same
	// sequence.
	SendVerificationCode(ctx context.Context, phoneNumber string) <-chan Result[string]

	// VerifyCode redeems a user-entered code against a verification identifier
	// obtained from SendVerificationCode and returns the opaque user
	// identifier. Failure kinds: [ErrVerificationInvalid] (unknown or expired
	// id, code mismatch), [ErrInvalidCredentials], [ErrNetworkFailure].
	VerifyCode(ctx context.Context, verificationID, code string) Result[string]
}
