package memory

import (
	"context"
	"sort"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
)

type pickRepository struct {
	store *Store
}

func (r *pickRepository) Create(_ context.Context, pick *domain.Pick) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Same backstop the database enforces with unique indexes.
	for _, existing := range r.store.picks {
		if existing.LeagueID != pick.LeagueID {
			continue
		}
		if existing.CelebrityID == pick.CelebrityID || existing.Overall == pick.Overall {
			return domain.ErrCelebrityTaken
		}
	}

	r.store.picks[pick.ID] = *pick
	return nil
}

func (r *pickRepository) ListByLeague(_ context.Context, leagueID uuid.UUID) ([]*domain.Pick, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var picks []*domain.Pick
	for _, pick := range r.store.picks {
		if pick.LeagueID == leagueID {
			p := pick
			picks = append(picks, &p)
		}
	}
	sort.Slice(picks, func(i, j int) bool {
		return picks[i].Overall < picks[j].Overall
	})
	return picks, nil
}

func (r *pickRepository) CountByLeague(_ context.Context, leagueID uuid.UUID) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, pick := range r.store.picks {
		if pick.LeagueID == leagueID {
			count++
		}
	}
	return count, nil
}

func (r *pickRepository) FindByCelebrity(_ context.Context, leagueID, celebrityID uuid.UUID) (*domain.Pick, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, pick := range r.store.picks {
		if pick.LeagueID == leagueID && pick.CelebrityID == celebrityID {
			p := pick
			return &p, nil
		}
	}
	return nil, nil
}
