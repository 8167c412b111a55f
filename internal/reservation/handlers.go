package reservation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sushinaruto/backend/internal/types/reservation"
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

func urlID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Create accepts the public reservation form, JSON or form-encoded.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		guests := r.PostFormValue("guests")
		if guests == "" {
			// legacy form field name
			guests = r.PostFormValue("people")
		}
		req = CreateRequest{
			Name:            r.PostFormValue("name"),
			Email:           r.PostFormValue("email"),
			Phone:           r.PostFormValue("phone"),
			Date:            r.PostFormValue("date"),
			Time:            r.PostFormValue("time"),
			Guests:          guests,
			SpecialRequests: r.PostFormValue("special_requests"),
		}
	}

	res, err := h.svc.Create(r.Context(), req)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "reservation": res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.svc.List(r.Context(), r.URL.Query().Get("date"), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"reservations": reservations})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	status := reservation.Status(r.PostFormValue("status"))

	res, err := h.svc.UpdateStatus(r.Context(), id, status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrReservationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		respondJSON(w, http.StatusOK, map[string]any{"success": true, "status": res.Status})
	}
}

func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	mailType := chi.URLParam(r, "mailType")

	err = h.svc.SendStatusEmail(r.Context(), id, mailType)
	switch {
	case errors.Is(err, ErrInvalidMailType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrReservationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
