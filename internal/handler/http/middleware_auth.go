package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/utils"
)

// auth guards the session routes. It pulls the bearer token out of the
// Authorization header, validates it through AuthService.ParseToken and puts
// the authenticated user's UID into the request context under
// [utils.UserUIDCtxKey]. A missing header, an unparseable bearer value or an
// invalid token all answer 401; every rejection is logged through the
// request-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// дальше по цепочке UID доступен без повторного разбора токена
		ctx = context.WithValue(ctx, utils.UserUIDCtxKey, token.UserUID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader splits "Authorization: <scheme> <token>" and returns
// the token part. [ErrInvalidAuthorizationHeader] is returned when the header
// has no second part, [ErrEmptyToken] when the part is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
