package repository

import (
	"context"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
)

// Implementations return the sentinel errors in the domain package for
// not-found and duplicate conditions so callers never see driver errors.

type LeagueRepository interface {
	Create(ctx context.Context, league *domain.League) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.League, error)
	GetByJoinToken(ctx context.Context, token string) (*domain.League, error)
	// GetByIDOrToken resolves value as a league id first, then as an
	// invite token.
	GetByIDOrToken(ctx context.Context, value string) (*domain.League, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LeagueStatus) error
	// BeginDraft writes every team's draft position and flips the league
	// to drafting in a single transaction. positions must be a permutation
	// of 1..len(positions).
	BeginDraft(ctx context.Context, leagueID uuid.UUID, positions map[uuid.UUID]int) error
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	// ListByLeague returns teams ordered by join time (ties broken by
	// creation sequence).
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.Team, error)
	// ListByDraftPosition returns teams ordered by assigned position.
	ListByDraftPosition(ctx context.Context, leagueID uuid.UUID) ([]*domain.Team, error)
	CountByLeague(ctx context.Context, leagueID uuid.UUID) (int, error)
}

type CelebrityRepository interface {
	Create(ctx context.Context, celebrity *domain.Celebrity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Celebrity, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.Celebrity, error)
}

type PickRepository interface {
	Create(ctx context.Context, pick *domain.Pick) error
	// ListByLeague returns picks ordered by overall.
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.Pick, error)
	CountByLeague(ctx context.Context, leagueID uuid.UUID) (int, error)
	// FindByCelebrity returns nil, nil when the celebrity has not been
	// picked in the league.
	FindByCelebrity(ctx context.Context, leagueID, celebrityID uuid.UUID) (*domain.Pick, error)
}

type Repositories struct {
	League    LeagueRepository
	Team      TeamRepository
	Celebrity CelebrityRepository
	Pick      PickRepository
}
