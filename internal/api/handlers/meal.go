package handlers

import (
	"net/http"

	"github.com/popo0015/body-tracker/internal/api/middleware"
	"github.com/popo0015/body-tracker/internal/service"
)

func (h *RecordHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	meals, err := h.records.ListMeals(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, "meal.List", err)
		return
	}

	writeJSON(w, http.StatusOK, meals)
}

func (h *RecordHandler) AddMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req service.MealRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	meal, err := h.records.AddMeal(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.log, "meal.Add", err)
		return
	}

	writeJSON(w, http.StatusCreated, meal)
}
