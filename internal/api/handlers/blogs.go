package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bloglist/internal/api/httpx"
	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/services"
)

type BlogsHandler struct {
	svc *services.BlogService
}

func NewBlogsHandler(svc *services.BlogService) *BlogsHandler {
	return &BlogsHandler{svc: svc}
}

func (h *BlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogs)
}

func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	var in services.CreateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	b, err := h.svc.Create(r.Context(), owner, in)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	// the create response carries the raw owner id; population happens only
	// on listings
	httpx.WriteJSON(w, http.StatusCreated, createdBlog{Blog: b, Owner: b.UserID.Hex()})
}

type createdBlog struct {
	models.Blog
	Owner string `json:"user"`
}

func (h *BlogsHandler) UpdateLikes(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Likes int `json:"likes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	b, err := h.svc.UpdateLikes(r.Context(), chi.URLParam(r, "id"), in.Likes)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BlogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	if err := h.svc.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
