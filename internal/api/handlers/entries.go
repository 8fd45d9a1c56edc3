package handlers

import (
	"net/http"
	"strconv"

	"github.com/popo0015/body-tracker/internal/api/middleware"
	"github.com/popo0015/body-tracker/internal/service"
	"go.uber.org/zap"
)

type EntriesHandler struct {
	history *service.HistoryService
	log     *zap.SugaredLogger
}

func NewEntriesHandler(history *service.HistoryService, log *zap.SugaredLogger) *EntriesHandler {
	return &EntriesHandler{history: history, log: log}
}

func (h *EntriesHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.history.Today(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, "entries.Today", err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// History returns the trailing window; ?days overrides the configured default.
func (h *EntriesHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n == 0 {
			http.Error(w, service.ErrInvalidWindow.Error(), http.StatusBadRequest)
			return
		}
		days = n
	}

	summary, err := h.history.History(r.Context(), userID, days)
	if err != nil {
		writeError(w, h.log, "entries.History", err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
