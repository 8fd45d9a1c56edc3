package handlers

import (
	"net/http"

	"github.com/popo0015/body-tracker/internal/api/middleware"
	"github.com/popo0015/body-tracker/internal/service"
	"go.uber.org/zap"
)

// RecordHandler serves the per-user measurement, meal and workout collections.
type RecordHandler struct {
	records *service.RecordService
	log     *zap.SugaredLogger
}

func NewRecordHandler(records *service.RecordService, log *zap.SugaredLogger) *RecordHandler {
	return &RecordHandler{records: records, log: log}
}

func (h *RecordHandler) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	measurements, err := h.records.ListMeasurements(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, "measurement.List", err)
		return
	}

	writeJSON(w, http.StatusOK, measurements)
}

// SaveMeasurement replaces the caller's measurement for the given day.
func (h *RecordHandler) SaveMeasurement(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req service.MeasurementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	measurement, err := h.records.SaveMeasurement(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.log, "measurement.Save", err)
		return
	}

	writeJSON(w, http.StatusOK, measurement)
}
