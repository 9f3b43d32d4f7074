package service

import (
	"errors"
	"fmt"

	"github.com/BlakeDanielson/celeb-draft/internal/config"
	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionService issues and validates the signed tokens handed out when a
// team joins a league. The token is the team's identity for every
// join-gated operation.
type SessionService struct {
	clock clockwork.Clock
	cfg   *config.Config
}

func NewSessionService(clock clockwork.Clock, cfg *config.Config) *SessionService {
	return &SessionService{clock: clock, cfg: cfg}
}

type SessionClaims struct {
	TeamID   uuid.UUID
	LeagueID uuid.UUID
}

func (s *SessionService) IssueToken(team *domain.Team) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":      team.ID.String(),
		"leagueId": team.LeagueID.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}

func (s *SessionService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	teamIDStr, _ := claims["sub"].(string)
	leagueIDStr, _ := claims["leagueId"].(string)

	teamID, err := uuid.Parse(teamIDStr)
	if err != nil {
		return nil, ErrInvalidSession
	}
	leagueID, err := uuid.Parse(leagueIDStr)
	if err != nil {
		return nil, ErrInvalidSession
	}

	return &SessionClaims{TeamID: teamID, LeagueID: leagueID}, nil
}
