package http

import (
	"errors"
	"net/http"

	"github.com/avasilcai/school-admin/internal/service"
	"github.com/avasilcai/school-admin/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:         http.StatusBadRequest,
	service.ErrInvalidRoleMapping:          http.StatusBadRequest,
	service.ErrInvalidCredentials:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:     http.StatusUnauthorized,
	service.ErrValidationInvalidGradeValue: http.StatusBadRequest,
	service.ErrValidationInvalidWeekday:    http.StatusBadRequest,
	service.ErrValidationNoStudent:         http.StatusBadRequest,
	service.ErrValidationNoSession:         http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrAccountNotFound:       http.StatusNotFound,
	store.ErrResetTokenNotFound:    http.StatusNotFound,
	store.ErrClassNotFound:         http.StatusNotFound,
	store.ErrSessionNotFound:       http.StatusNotFound,
	store.ErrMenuItemNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
