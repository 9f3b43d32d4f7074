package memory

import (
	"context"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
)

type leagueRepository struct {
	store *Store
}

func (r *leagueRepository) Create(_ context.Context, league *domain.League) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.leagues[league.ID] = *league
	return nil
}

func (r *leagueRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.League, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	league, ok := r.store.leagues[id]
	if !ok {
		return nil, domain.ErrLeagueNotFound
	}
	return &league, nil
}

func (r *leagueRepository) GetByJoinToken(_ context.Context, token string) (*domain.League, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, league := range r.store.leagues {
		if league.JoinToken == token {
			l := league
			return &l, nil
		}
	}
	return nil, domain.ErrLeagueNotFound
}

func (r *leagueRepository) GetByIDOrToken(ctx context.Context, value string) (*domain.League, error) {
	if id, err := uuid.Parse(value); err == nil {
		if league, err := r.GetByID(ctx, id); err == nil {
			return league, nil
		}
	}
	return r.GetByJoinToken(ctx, value)
}

func (r *leagueRepository) UpdateStatus(_ context.Context, id uuid.UUID, status domain.LeagueStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	league, ok := r.store.leagues[id]
	if !ok {
		return domain.ErrLeagueNotFound
	}
	league.Status = status
	r.store.leagues[id] = league
	return nil
}

func (r *leagueRepository) BeginDraft(_ context.Context, leagueID uuid.UUID, positions map[uuid.UUID]int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	league, ok := r.store.leagues[leagueID]
	if !ok {
		return domain.ErrLeagueNotFound
	}

	// Validate everything before the first write so the assignment is
	// all-or-nothing, mirroring the transactional contract.
	for teamID := range positions {
		team, ok := r.store.teams[teamID]
		if !ok || team.LeagueID != leagueID {
			return domain.ErrTeamNotFound
		}
	}

	for teamID, position := range positions {
		team := r.store.teams[teamID]
		p := position
		team.DraftPosition = &p
		r.store.teams[teamID] = team
	}

	league.Status = domain.LeagueStatusDrafting
	r.store.leagues[leagueID] = league
	return nil
}
