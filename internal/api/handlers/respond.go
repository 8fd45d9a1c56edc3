package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/popo0015/body-tracker/internal/service"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type MessageResponse struct {
	Message string `json:"message"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto status codes. Anything unrecognised is
// logged under op and reported as a generic 500.
func writeError(w http.ResponseWriter, log *zap.SugaredLogger, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidWindow):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, service.ErrEmailExists):
		http.Error(w, "Email already registered", http.StatusConflict)
	default:
		log.Errorw("request failed", "op", op, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
