package memory

import (
	"context"
	"sort"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
)

type teamRepository struct {
	store *Store
}

func (r *teamRepository) Create(_ context.Context, team *domain.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.teamSeq++
	team.Seq = r.store.teamSeq
	r.store.teams[team.ID] = *team
	return nil
}

func (r *teamRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	team, ok := r.store.teams[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return &team, nil
}

func (r *teamRepository) ListByLeague(_ context.Context, leagueID uuid.UUID) ([]*domain.Team, error) {
	teams := r.collect(leagueID)
	sort.Slice(teams, func(i, j int) bool {
		if !teams[i].JoinedAt.Equal(teams[j].JoinedAt) {
			return teams[i].JoinedAt.Before(teams[j].JoinedAt)
		}
		return teams[i].Seq < teams[j].Seq
	})
	return teams, nil
}

func (r *teamRepository) ListByDraftPosition(_ context.Context, leagueID uuid.UUID) ([]*domain.Team, error) {
	teams := r.collect(leagueID)
	sort.Slice(teams, func(i, j int) bool {
		pi, pj := teams[i].DraftPosition, teams[j].DraftPosition
		switch {
		case pi != nil && pj != nil:
			return *pi < *pj
		case pi != nil:
			return true
		case pj != nil:
			return false
		default:
			return teams[i].JoinedAt.Before(teams[j].JoinedAt)
		}
	})
	return teams, nil
}

func (r *teamRepository) CountByLeague(_ context.Context, leagueID uuid.UUID) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, team := range r.store.teams {
		if team.LeagueID == leagueID {
			count++
		}
	}
	return count, nil
}

func (r *teamRepository) collect(leagueID uuid.UUID) []*domain.Team {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var teams []*domain.Team
	for _, team := range r.store.teams {
		if team.LeagueID == leagueID {
			t := team
			teams = append(teams, &t)
		}
	}
	return teams
}
