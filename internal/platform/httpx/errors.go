package httpx

import (
	"errors"
	"net/http"

	"github.com/tasklight/tasklight/internal/shared"
)

// RespondError maps domain errors to HTTP responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidInput), errors.Is(err, shared.ErrDuplicateEmail):
		Error(w, http.StatusBadRequest, shared.UserSafeMessage(err))
	case errors.Is(err, shared.ErrInvalidCredentials), errors.Is(err, shared.ErrTokenMissing):
		Error(w, http.StatusUnauthorized, shared.UserSafeMessage(err))
	case errors.Is(err, shared.ErrTokenInvalid), errors.Is(err, shared.ErrTokenExpired):
		Error(w, http.StatusForbidden, shared.UserSafeMessage(err))
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, shared.UserSafeMessage(err))
	default:
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
