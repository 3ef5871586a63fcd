package models

// AuthResponse is returned by every operation that establishes a session:
// register, login, anonymous sign-in, and code redemption.
type AuthResponse struct {
	// UserUID is the opaque identifier of the authenticated user.
	UserUID string `json:"user_uid"`

	// Token is the compact JWS the client presents on subsequent requests.
	Token string `json:"token"`
}

// SessionResponse describes the state of the session bound to the presented
// token. Returned by the session probe endpoint.
type SessionResponse struct {
	// Active is true when the token is valid and not expired.
	Active bool `json:"active"`

	// UserUID identifies the session owner when Active is true.
	UserUID string `json:"user_uid,omitempty"`
}
