package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BlakeDanielson/celeb-draft/internal/api/middleware"
	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/BlakeDanielson/celeb-draft/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CelebrityHandler struct {
	celebrityService *service.CelebrityService
}

func NewCelebrityHandler(celebrityService *service.CelebrityService) *CelebrityHandler {
	return &CelebrityHandler{celebrityService: celebrityService}
}

type CelebritiesResponse struct {
	Celebrities []*domain.Celebrity `json:"celebrities"`
}

func (h *CelebrityHandler) List(w http.ResponseWriter, r *http.Request) {
	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid league id")
		return
	}

	celebrities, err := h.celebrityService.ListCelebrities(r.Context(), leagueID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CelebritiesResponse{Celebrities: celebrities})
}

type AddCelebrityRequest struct {
	Name string `json:"name"`
}

func (h *CelebrityHandler) Add(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "session required")
		return
	}

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid league id")
		return
	}

	var req AddCelebrityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	celebrity, err := h.celebrityService.AddCelebrity(r.Context(), leagueID, session.TeamID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCelebrityNameRequired) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, celebrity)
}
