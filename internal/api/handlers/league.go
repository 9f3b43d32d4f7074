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
	"go.uber.org/zap"
)

type LeagueHandler struct {
	leagueService  *service.LeagueService
	sessionService *service.SessionService
	logger         *zap.Logger
}

func NewLeagueHandler(leagueService *service.LeagueService, sessionService *service.SessionService, logger *zap.Logger) *LeagueHandler {
	return &LeagueHandler{
		leagueService:  leagueService,
		sessionService: sessionService,
		logger:         logger,
	}
}

type CreateLeagueRequest struct {
	Name         string `json:"name"`
	MaxTeams     int    `json:"maxTeams"`
	PicksPerTeam int    `json:"picksPerTeam"`
}

func (h *LeagueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	league, err := h.leagueService.CreateLeague(r.Context(), service.CreateLeagueInput{
		Name:         req.Name,
		MaxTeams:     req.MaxTeams,
		PicksPerTeam: req.PicksPerTeam,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrInvalidMaxTeams),
			errors.Is(err, service.ErrInvalidPicksPerTeam):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("create league failed", zap.Error(err))
			respondDomainError(w, err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, league)
}

func (h *LeagueHandler) Get(w http.ResponseWriter, r *http.Request) {
	idOrToken := chi.URLParam(r, "idOrToken")

	league, err := h.leagueService.GetLeague(r.Context(), idOrToken)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, league)
}

type JoinLeagueRequest struct {
	DisplayName string `json:"displayName"`
}

type JoinLeagueResponse struct {
	League       *domain.League `json:"league"`
	Team         *domain.Team   `json:"team"`
	SessionToken string         `json:"sessionToken"`
}

func (h *LeagueHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The path segment is the invite token; possession of it is the
	// credential for joining.
	result, err := h.leagueService.JoinLeague(r.Context(), chi.URLParam(r, "token"), req.DisplayName)
	if err != nil {
		if errors.Is(err, service.ErrDisplayNameRequired) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondDomainError(w, err)
		return
	}

	token, err := h.sessionService.IssueToken(result.Team)
	if err != nil {
		h.logger.Error("issue session token failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, JoinLeagueResponse{
		League:       result.League,
		Team:         result.Team,
		SessionToken: token,
	})
}

func (h *LeagueHandler) StartDraft(w http.ResponseWriter, r *http.Request) {
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

	if err := h.leagueService.StartDraft(r.Context(), leagueID, session.TeamID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
