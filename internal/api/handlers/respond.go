package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondDomainError maps the error taxonomy onto HTTP statuses:
// not-found 404, invalid-reference 400, conflict 409, commissioner gate
// 403, anything else 500.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFound(err):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrTeamWrongLeague),
		errors.Is(err, domain.ErrCelebrityWrongLeague):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotCommissioner):
		respondError(w, http.StatusForbidden, err.Error())
	case domain.IsConflict(err):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
