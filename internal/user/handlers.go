package user

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type signupReq struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginReq struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword); err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrPasswordMismatch), errors.Is(err, ErrPasswordTooShort):
			code = http.StatusBadRequest
		case errors.Is(err, ErrUserExists), errors.Is(err, ErrEmailExists):
			code = http.StatusConflict
		}
		http.Error(w, err.Error(), code)
		return
	}

	// Sign the fresh customer straight in.
	token, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		http.Error(w, "authentication failed after signup", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, err := h.svc.Authenticate(r.Context(), req.Identifier, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
}
