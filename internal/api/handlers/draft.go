package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/BlakeDanielson/celeb-draft/internal/api/middleware"
	"github.com/BlakeDanielson/celeb-draft/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DraftHandler struct {
	draftService *service.DraftService
	logger       *zap.Logger
}

func NewDraftHandler(draftService *service.DraftService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{draftService: draftService, logger: logger}
}

type SubmitPickRequest struct {
	// TeamID is optional; the session team is authoritative. When both are
	// present they must agree.
	TeamID      string `json:"teamId"`
	CelebrityID string `json:"celebrityId"`
}

func (h *DraftHandler) SubmitPick(w http.ResponseWriter, r *http.Request) {
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

	var req SubmitPickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CelebrityID == "" {
		respondError(w, http.StatusBadRequest, "celebrityId required")
		return
	}
	celebrityID, err := uuid.Parse(req.CelebrityID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid celebrity id")
		return
	}

	if req.TeamID != "" && req.TeamID != session.TeamID.String() {
		respondError(w, http.StatusBadRequest, "teamId does not match session")
		return
	}

	pick, err := h.draftService.SubmitPick(r.Context(), leagueID, session.TeamID, celebrityID)
	if err != nil {
		h.logger.Debug("pick rejected",
			zap.String("leagueId", leagueID.String()),
			zap.String("teamId", session.TeamID.String()),
			zap.Error(err),
		)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, pick)
}

// GetDraftState serves the polling snapshot. A caller that passes its last
// watermark via ?since=RFC3339 gets 304 when nothing changed.
func (h *DraftHandler) GetDraftState(w http.ResponseWriter, r *http.Request) {
	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid league id")
		return
	}

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid since timestamp")
			return
		}
		since = &parsed
	}

	state, err := h.draftService.GetDraftState(r.Context(), leagueID, since)
	if err != nil {
		if errors.Is(err, service.ErrNotModified) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (h *DraftHandler) GetRecap(w http.ResponseWriter, r *http.Request) {
	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid league id")
		return
	}

	recap, err := h.draftService.GetRecap(r.Context(), leagueID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, recap)
}
