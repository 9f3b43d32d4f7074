package service

import (
	"github.com/BlakeDanielson/celeb-draft/internal/config"
	"github.com/BlakeDanielson/celeb-draft/internal/lock"
	"github.com/BlakeDanielson/celeb-draft/internal/repository"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type Services struct {
	League    *LeagueService
	Celebrity *CelebrityService
	Draft     *DraftService
	Session   *SessionService
}

func NewServices(repos *repository.Repositories, locks *lock.Keyed, clock clockwork.Clock, logger *zap.Logger, cfg *config.Config) *Services {
	return &Services{
		League:    NewLeagueService(repos.League, repos.Team, clock, logger, cfg),
		Celebrity: NewCelebrityService(repos.League, repos.Team, repos.Celebrity, clock),
		Draft:     NewDraftService(repos.League, repos.Team, repos.Celebrity, repos.Pick, locks, clock, logger),
		Session:   NewSessionService(clock, cfg),
	}
}
