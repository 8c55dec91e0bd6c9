package http

import (
	"errors"
	"net/http"

	"github.com/brightsmile/membership-api/internal/service"
	"github.com/brightsmile/membership-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrApplicationIDConflict: http.StatusInternalServerError,
	store.ErrApplicationRejected:   http.StatusBadRequest,
	store.ErrApplicationNotFound:   http.StatusNotFound,
	store.ErrApplicationNotSaved:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
