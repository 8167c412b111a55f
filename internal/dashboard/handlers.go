package dashboard

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Metrics(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]any{"status": "error", "message": "could not load metrics"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"status": "success", "data": summary})
}

func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Data(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]any{"status": "error", "message": "could not load dashboard data"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"status": "success", "data": data})
}
