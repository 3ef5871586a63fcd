// Package utils collects the small helpers shared by both binaries:
// context keys, HMAC digests, JSON response writing, the resty client
// wrapper, UUID generation and JWT handling.
package utils

import (
	"context"
)

// contextKey keeps our context values from colliding with string keys of
// other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserUIDCtxKey stores the authenticated user's identifier in the request
// context. The auth middleware writes it, handlers read it back through
// [GetUserUIDFromContext].
var UserUIDCtxKey = contextKey("userUID")

// GetUserUIDFromContext returns the user UID from ctx. The flag is false
// when the value is missing, empty or not a string.
func GetUserUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UserUIDCtxKey).(string)
	if !ok || uid == "" {
		return "", false
	}
	return uid, true
}
