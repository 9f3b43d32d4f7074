package memory

import (
	"context"
	"sort"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
)

type celebrityRepository struct {
	store *Store
}

func (r *celebrityRepository) Create(_ context.Context, celebrity *domain.Celebrity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.celebrities {
		if existing.LeagueID == celebrity.LeagueID &&
			existing.NormalizedName == celebrity.NormalizedName {
			return domain.ErrDuplicateCelebrity
		}
	}

	r.store.celebrities[celebrity.ID] = *celebrity
	return nil
}

func (r *celebrityRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Celebrity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	celebrity, ok := r.store.celebrities[id]
	if !ok {
		return nil, domain.ErrCelebrityNotFound
	}
	return &celebrity, nil
}

func (r *celebrityRepository) ListByLeague(_ context.Context, leagueID uuid.UUID) ([]*domain.Celebrity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var celebrities []*domain.Celebrity
	for _, celebrity := range r.store.celebrities {
		if celebrity.LeagueID == leagueID {
			c := celebrity
			celebrities = append(celebrities, &c)
		}
	}
	sort.Slice(celebrities, func(i, j int) bool {
		return celebrities[i].AddedAt.Before(celebrities[j].AddedAt)
	})
	return celebrities, nil
}
