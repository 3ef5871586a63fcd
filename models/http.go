package models

// Credentials carries the email/password pair submitted by a client when
// registering or signing in. Passwords travel only over this request body
// and are hashed immediately on the server side.
type Credentials struct {
	// Email is the sign-in identifier. Required.
	Email string `json:"email"`

	// Password is the plaintext password. Required.
	// It is never persisted and never logged.
	Password string `json:"password"`
}

// PhoneSendRequest asks the provider to start a phone verification attempt.
type PhoneSendRequest struct {
	// PhoneNumber is the E.164 number the code is sent to. Required.
	PhoneNumber string `json:"phone_number"`
}

// PhoneSendResponse describes the outcome of a started verification attempt.
//
// Exactly one of the two shapes occurs: either AutoVerified is true and
// UserUID identifies the already-authenticated user (VerificationID is empty),
// or AutoVerified is false and VerificationID must be echoed back together
// with the received code.
type PhoneSendResponse struct {
	// VerificationID identifies the pending attempt for a later verify call.
	VerificationID string `json:"verification_id,omitempty"`

	// AutoVerified is true when the number was verified instantly without
	// a code round-trip.
	AutoVerified bool `json:"auto_verified"`

	// UserUID is set only when AutoVerified is true.
	UserUID string `json:"user_uid,omitempty"`
}

// PhoneVerifyRequest redeems a previously issued verification code.
type PhoneVerifyRequest struct {
	// VerificationID is the identifier returned by the send call. Required.
	VerificationID string `json:"verification_id"`

	// Code is the short numeric code received by the user. Required.
	Code string `json:"code"`
}
