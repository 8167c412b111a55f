package menu

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sushinaruto/backend/internal/middleware"
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

func (h *Handler) errorCode(err error) int {
	switch {
	case errors.Is(err, ErrNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrItemNotFound), errors.Is(err, ErrSpecialNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func urlID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Home serves the landing payload: featured and special items.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	featured, specials, err := h.svc.Home(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"featured_items": featured,
		"special_items":  specials,
	})
}

// Menu serves the public menu grouped by category.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Menu(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"categories": groups})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

type categoryReq struct {
	Name    string `json:"name"`
	AddedBy string `json:"added_by"`
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.AddedBy == "" {
		if u := middleware.UserFromContext(r.Context()); u != nil {
			req.AddedBy = u.Username
		}
	}
	c, err := h.svc.CreateCategory(r.Context(), req.Name, req.AddedBy)
	if err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *Handler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.svc.RenameCategory(r.Context(), id, req.Name, req.AddedBy)
	if err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var in ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	it, err := h.svc.CreateItem(r.Context(), in)
	if err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	respondJSON(w, http.StatusCreated, it)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	it, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	respondJSON(w, http.StatusOK, it)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var in ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	it, err := h.svc.UpdateItem(r.Context(), id, in)
	if err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	respondJSON(w, http.StatusOK, it)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) CreateSpecial(w http.ResponseWriter, r *http.Request) {
	var in SpecialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sp, err := h.svc.CreateSpecial(r.Context(), in)
	if err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	respondJSON(w, http.StatusCreated, sp)
}

func (h *Handler) UpdateSpecial(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var in SpecialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sp, err := h.svc.UpdateSpecial(r.Context(), id, in)
	if err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	respondJSON(w, http.StatusOK, sp)
}

func (h *Handler) DeleteSpecial(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteSpecial(r.Context(), id); err != nil {
		http.Error(w, err.Error(), h.errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListSpecials(w http.ResponseWriter, r *http.Request) {
	specials, err := h.svc.ListSpecials(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, specials)
}
