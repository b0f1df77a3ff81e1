package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"bloglist/internal/api/validate"
	"bloglist/internal/auth"
	"bloglist/internal/repository"
	"bloglist/internal/services"
)

type APIError struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Error: msg})
}

// Error is the central mapper: known error kinds become their HTTP status
// and {"error": msg} body; anything else is logged and reported as a 500.
func Error(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	switch {
	case errors.Is(err, repository.ErrMalformedID),
		errors.Is(err, repository.ErrNotFound):
		// absent ids surface as malformed ones; no 404 on these routes
		WriteError(w, http.StatusBadRequest, repository.ErrMalformedID.Error())
	case errors.Is(err, repository.ErrDuplicateUsername):
		WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrMissingCredentials),
		errors.Is(err, services.ErrCredentialsTooShort),
		errors.Is(err, services.ErrMissingTitleOrURL):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &verrs):
		WriteError(w, http.StatusBadRequest, verrs.Error())
	default:
		slog.Error("unhandled error", "err", err)
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
