package handlers

import (
	"net/http"

	"github.com/popo0015/body-tracker/internal/api/middleware"
	"github.com/popo0015/body-tracker/internal/service"
)

func (h *RecordHandler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	workouts, err := h.records.ListWorkouts(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, "workout.List", err)
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

func (h *RecordHandler) AddWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req service.WorkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	workout, err := h.records.AddWorkout(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.log, "workout.Add", err)
		return
	}

	writeJSON(w, http.StatusCreated, workout)
}
