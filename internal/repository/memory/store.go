// Package memory implements the repository interfaces over in-process maps.
// It backs the unit tests and local development without a database. All
// entities share one store so cross-entity operations (draft start) stay
// atomic under a single mutex.
package memory

import (
	"sync"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/BlakeDanielson/celeb-draft/internal/repository"
	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	leagues     map[uuid.UUID]domain.League
	teams       map[uuid.UUID]domain.Team
	celebrities map[uuid.UUID]domain.Celebrity
	picks       map[uuid.UUID]domain.Pick
	teamSeq     int64
}

func NewStore() *Store {
	return &Store{
		leagues:     make(map[uuid.UUID]domain.League),
		teams:       make(map[uuid.UUID]domain.Team),
		celebrities: make(map[uuid.UUID]domain.Celebrity),
		picks:       make(map[uuid.UUID]domain.Pick),
	}
}

func NewRepositories(store *Store) *repository.Repositories {
	return &repository.Repositories{
		League:    &leagueRepository{store: store},
		Team:      &teamRepository{store: store},
		Celebrity: &celebrityRepository{store: store},
		Pick:      &pickRepository{store: store},
	}
}
