package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-flow/internal/service"
	"github.com/MKhiriev/go-auth-flow/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	// 410 signals a stale attempt, 422 an unusable one; clients surface both
	// as invalid verification input
	service.ErrVerificationExpired:      http.StatusGone,
	service.ErrVerificationNotFound:     http.StatusUnprocessableEntity,
	service.ErrVerificationCodeMismatch: http.StatusUnprocessableEntity,

	store.ErrEmailAlreadyExists: http.StatusForbidden,
	store.ErrPhoneAlreadyExists: http.StatusForbidden,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
