package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the JWT wrapper that travels between the auth service and the
// handlers. The embedded [jwt.Token] serves signing and claim inspection,
// the embedded [jwt.RegisteredClaims] lets ParseWithClaims decode straight
// into this type. Only the compact form matters outside the process, so
// everything is excluded from JSON.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form, ready for an Authorization
	// header or the client session file.
	SignedString string `json:"-"`

	// UserUID caches the "sub" claim so handlers do not re-read claims.
	UserUID string `json:"-"`
}

// GetUserUID reads the owner identifier from the "sub" claim. A missing or
// empty subject is an error.
func (t *Token) GetUserUID() (string, error) {
	uid, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserUID from token: %w", err)
	}
	if uid == "" {
		return "", fmt.Errorf("error extracting UserUID from token: empty subject claim")
	}

	return uid, nil
}

// String implements [fmt.Stringer] with the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
