package handlers

import (
	"encoding/json"
	"net/http"

	"bloglist/internal/api/httpx"
	"bloglist/internal/services"
)

type LoginHandler struct {
	svc *services.LoginService
}

func NewLoginHandler(svc *services.LoginService) *LoginHandler {
	return &LoginHandler{svc: svc}
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Authenticate(r.Context(), in.Username, in.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
