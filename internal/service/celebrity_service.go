package service

import (
	"context"
	"errors"
	"strings"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/BlakeDanielson/celeb-draft/internal/repository"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var ErrCelebrityNameRequired = errors.New("name is required")

type CelebrityService struct {
	leagueRepo    repository.LeagueRepository
	teamRepo      repository.TeamRepository
	celebrityRepo repository.CelebrityRepository
	clock         clockwork.Clock
}

func NewCelebrityService(leagueRepo repository.LeagueRepository, teamRepo repository.TeamRepository, celebrityRepo repository.CelebrityRepository, clock clockwork.Clock) *CelebrityService {
	return &CelebrityService{
		leagueRepo:    leagueRepo,
		teamRepo:      teamRepo,
		celebrityRepo: celebrityRepo,
		clock:         clock,
	}
}

// AddCelebrity adds a name to the league's draftable pool. Uniqueness is
// case- and whitespace-insensitive within a league; the same name may exist
// in any number of other leagues.
func (s *CelebrityService) AddCelebrity(ctx context.Context, leagueID, teamID uuid.UUID, name string) (*domain.Celebrity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCelebrityNameRequired
	}

	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if league.Status == domain.LeagueStatusComplete {
		return nil, domain.ErrLeagueComplete
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LeagueID != leagueID {
		return nil, domain.ErrTeamWrongLeague
	}

	celebrity := &domain.Celebrity{
		ID:             uuid.New(),
		LeagueID:       leagueID,
		Name:           name,
		NormalizedName: domain.NormalizeCelebrityName(name),
		AddedByTeamID:  teamID,
		AddedAt:        s.clock.Now(),
	}

	if err := s.celebrityRepo.Create(ctx, celebrity); err != nil {
		return nil, err
	}

	return celebrity, nil
}

func (s *CelebrityService) ListCelebrities(ctx context.Context, leagueID uuid.UUID) ([]*domain.Celebrity, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, err
	}
	return s.celebrityRepo.ListByLeague(ctx, leagueID)
}
