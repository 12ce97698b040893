package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/azhar2201/achievement-tracker/internal/services"
)

// respondJSON writes a JSON payload with the given status.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError writes the error taxonomy's JSON body. Internal detail stays
// in the logs; the client only sees the message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// statusFromError maps service sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNoValidated):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrDuplicate):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, "Something went wrong"
}
