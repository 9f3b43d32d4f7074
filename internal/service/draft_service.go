package service

import (
	"context"
	"errors"
	"time"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/BlakeDanielson/celeb-draft/internal/draft"
	"github.com/BlakeDanielson/celeb-draft/internal/lock"
	"github.com/BlakeDanielson/celeb-draft/internal/repository"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// ErrNotModified signals that the draft state has not changed since the
// caller's watermark.
var ErrNotModified = errors.New("draft state not modified")

type DraftService struct {
	leagueRepo    repository.LeagueRepository
	teamRepo      repository.TeamRepository
	celebrityRepo repository.CelebrityRepository
	pickRepo      repository.PickRepository
	locks         *lock.Keyed
	clock         clockwork.Clock
	logger        *zap.Logger
}

func NewDraftService(leagueRepo repository.LeagueRepository, teamRepo repository.TeamRepository, celebrityRepo repository.CelebrityRepository, pickRepo repository.PickRepository, locks *lock.Keyed, clock clockwork.Clock, logger *zap.Logger) *DraftService {
	return &DraftService{
		leagueRepo:    leagueRepo,
		teamRepo:      teamRepo,
		celebrityRepo: celebrityRepo,
		pickRepo:      pickRepo,
		locks:         locks,
		clock:         clock,
		logger:        logger,
	}
}

// SubmitPick appends a pick to the league's ledger if the submitting team
// holds the current turn and the celebrity is unclaimed.
//
// The checks run twice on purpose: a cheap optimistic pass outside the
// league lock rejects obviously invalid requests without queueing, then the
// authoritative pass inside the critical section re-reads the ledger, since
// the turn may have shifted while this request waited. Collapsing the two
// passes would either let races through or force every bad request to
// queue.
func (s *DraftService) SubmitPick(ctx context.Context, leagueID, teamID, celebrityID uuid.UUID) (*domain.Pick, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if league.Status != domain.LeagueStatusDrafting {
		return nil, domain.ErrLeagueNotDrafting
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LeagueID != leagueID {
		return nil, domain.ErrTeamWrongLeague
	}

	celebrity, err := s.celebrityRepo.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, err
	}
	if celebrity.LeagueID != leagueID {
		return nil, domain.ErrCelebrityWrongLeague
	}

	taken, err := s.pickRepo.FindByCelebrity(ctx, leagueID, celebrityID)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, domain.ErrCelebrityTaken
	}

	teams, err := s.teamRepo.ListByDraftPosition(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	teamCount := len(teams)
	if teamCount == 0 {
		return nil, domain.ErrNoTeams
	}

	pickCount, err := s.pickRepo.CountByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	expectedOverall := pickCount + 1
	if teams[draft.ExpectedIndex(pickCount, teamCount)].ID != teamID {
		return nil, domain.ErrNotYourTurn
	}

	var pick *domain.Pick
	err = s.locks.Do(leagueID.String(), func() error {
		currentCount, err := s.pickRepo.CountByLeague(ctx, leagueID)
		if err != nil {
			return err
		}
		taken, err := s.pickRepo.FindByCelebrity(ctx, leagueID, celebrityID)
		if err != nil {
			return err
		}
		if taken != nil {
			// A concurrent winner claimed the celebrity while this
			// request waited for the lock.
			return domain.ErrCelebrityTaken
		}

		nextOverall := currentCount + 1
		if nextOverall > league.TotalPicks(teamCount) {
			// Concurrent picks finished the draft while this request
			// waited for the lock.
			return domain.ErrLeagueNotDrafting
		}
		if nextOverall != expectedOverall {
			// The ledger moved while waiting; the turn may now belong to
			// someone else.
			if teams[draft.ExpectedIndex(currentCount, teamCount)].ID != teamID {
				return domain.ErrNotYourTurn
			}
		}

		pick = &domain.Pick{
			ID:          uuid.New(),
			LeagueID:    leagueID,
			Round:       draft.Round(nextOverall, teamCount),
			Overall:     nextOverall,
			TeamID:      teamID,
			CelebrityID: celebrityID,
			PickedAt:    s.clock.Now(),
		}
		if err := s.pickRepo.Create(ctx, pick); err != nil {
			return err
		}

		if nextOverall >= league.TotalPicks(teamCount) {
			if err := s.leagueRepo.UpdateStatus(ctx, leagueID, domain.LeagueStatusComplete); err != nil {
				return err
			}
			s.logger.Info("draft complete",
				zap.String("leagueId", leagueID.String()),
				zap.Int("picks", nextOverall),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pick made",
		zap.String("leagueId", leagueID.String()),
		zap.String("teamId", teamID.String()),
		zap.Int("overall", pick.Overall),
		zap.Int("round", pick.Round),
	)

	return pick, nil
}

// DraftState is the read-consistent snapshot served to polling clients.
type DraftState struct {
	League             *domain.League `json:"league"`
	Teams              []*domain.Team `json:"teams"`
	Picks              []*domain.Pick `json:"picks"`
	CurrentPickOverall int            `json:"currentPickOverall"`
	UpNextTeamID       *uuid.UUID     `json:"upNextTeamId"`
	LastUpdated        time.Time      `json:"lastUpdated"`
}

// GetDraftState assembles the snapshot: league, teams in position order,
// picks in overall order, the computed turn pointer, and a freshness
// watermark. If since is non-nil and the watermark is not newer,
// ErrNotModified is returned instead of a payload so pollers skip the
// transfer.
//
// The watermark is truncated to whole seconds so it survives an RFC3339
// round-trip, and it is monotonic: picks are append-only and positions are
// immutable once set.
func (s *DraftService) GetDraftState(ctx context.Context, leagueID uuid.UUID, since *time.Time) (*DraftState, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByDraftPosition(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	picks, err := s.pickRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	lastUpdated := league.CreatedAt
	for _, team := range teams {
		if team.JoinedAt.After(lastUpdated) {
			lastUpdated = team.JoinedAt
		}
	}
	for _, pick := range picks {
		if pick.PickedAt.After(lastUpdated) {
			lastUpdated = pick.PickedAt
		}
	}
	lastUpdated = lastUpdated.Truncate(time.Second)

	if since != nil && !lastUpdated.After(*since) {
		return nil, ErrNotModified
	}

	state := &DraftState{
		League:             league,
		Teams:              teams,
		Picks:              picks,
		CurrentPickOverall: len(picks) + 1,
		LastUpdated:        lastUpdated,
	}
	if len(teams) > 0 {
		id := teams[draft.ExpectedIndex(len(picks), len(teams))].ID
		state.UpNextTeamID = &id
	}

	return state, nil
}

type Recap struct {
	League *domain.League `json:"league"`
	Teams  []*domain.Team `json:"teams"`
	Picks  []*domain.Pick `json:"picks"`
}

// GetRecap returns the league with its full ledger and the teams in join
// order, for the post-draft summary view.
func (s *DraftService) GetRecap(ctx context.Context, leagueID uuid.UUID) (*Recap, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	picks, err := s.pickRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return &Recap{League: league, Teams: teams, Picks: picks}, nil
}
