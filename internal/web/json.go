package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "github.com/louisbranch/atelier/internal/platform/errors"
)

// errorResponse is the JSON error envelope used across the API.
type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeError maps a domain error onto an HTTP status and JSON envelope.
// Unknown errors are logged and reported as an opaque 500; internal detail
// never leaves the process.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		status := domainErr.Code.HTTPStatus()
		if status < http.StatusInternalServerError {
			writeJSONError(w, status, domainErr.Message)
			return
		}
	}
	log.Printf("request failed: %v", err)
	writeJSONError(w, http.StatusInternalServerError, "Internal server error")
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid request body", err)
	}
	return nil
}
