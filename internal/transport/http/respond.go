package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gymtrack/internal/auth"
	"gymtrack/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto HTTP statuses. Credential failures stay
// deliberately vague; infrastructure failures are logged and masked.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
	case errors.Is(err, domain.ErrInvalidSession):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid session"})
	case errors.Is(err, domain.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, domain.ErrUserExists):
		writeJSON(w, http.StatusConflict, errorBody{Error: "user already exists"})
	case errors.Is(err, auth.ErrEmptyCredential), errors.Is(err, auth.ErrPasswordLength):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}
