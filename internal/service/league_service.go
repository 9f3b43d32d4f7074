package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"

	"github.com/BlakeDanielson/celeb-draft/internal/config"
	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/BlakeDanielson/celeb-draft/internal/repository"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Validation errors, surfaced verbatim to the caller.
var (
	ErrNameRequired        = errors.New("name is required")
	ErrDisplayNameRequired = errors.New("displayName is required")
	ErrInvalidMaxTeams     = errors.New("maxTeams must be between 2 and 20")
	ErrInvalidPicksPerTeam = errors.New("picksPerTeam must be between 1 and 20")
)

type LeagueService struct {
	leagueRepo repository.LeagueRepository
	teamRepo   repository.TeamRepository
	clock      clockwork.Clock
	logger     *zap.Logger
	cfg        *config.Config
}

func NewLeagueService(leagueRepo repository.LeagueRepository, teamRepo repository.TeamRepository, clock clockwork.Clock, logger *zap.Logger, cfg *config.Config) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		clock:      clock,
		logger:     logger,
		cfg:        cfg,
	}
}

type CreateLeagueInput struct {
	Name         string
	MaxTeams     int
	PicksPerTeam int
}

func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (*domain.League, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	maxTeams := input.MaxTeams
	if maxTeams == 0 {
		maxTeams = 8
	}
	if maxTeams < 2 || maxTeams > 20 {
		return nil, ErrInvalidMaxTeams
	}

	picksPerTeam := input.PicksPerTeam
	if picksPerTeam == 0 {
		picksPerTeam = s.cfg.DefaultPicksPerTeam
	}
	if picksPerTeam < 1 || picksPerTeam > 20 {
		return nil, ErrInvalidPicksPerTeam
	}

	league := &domain.League{
		ID:           uuid.New(),
		Name:         name,
		JoinToken:    generateJoinToken(),
		Status:       domain.LeagueStatusSetup,
		MaxTeams:     maxTeams,
		PicksPerTeam: picksPerTeam,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.leagueRepo.Create(ctx, league); err != nil {
		return nil, err
	}

	s.logger.Info("league created",
		zap.String("leagueId", league.ID.String()),
		zap.Int("maxTeams", league.MaxTeams),
		zap.Int("picksPerTeam", league.PicksPerTeam),
	)

	return league, nil
}

// GetLeague resolves a league by id or by invite token.
func (s *LeagueService) GetLeague(ctx context.Context, idOrToken string) (*domain.League, error) {
	return s.leagueRepo.GetByIDOrToken(ctx, idOrToken)
}

type JoinLeagueResult struct {
	League *domain.League
	Team   *domain.Team
}

// JoinLeague creates a team in a league that is still in setup and has
// room. The invite token is the only credential needed to join.
func (s *LeagueService) JoinLeague(ctx context.Context, joinToken, displayName string) (*JoinLeagueResult, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrDisplayNameRequired
	}

	league, err := s.leagueRepo.GetByJoinToken(ctx, joinToken)
	if err != nil {
		return nil, err
	}
	if league.Status != domain.LeagueStatusSetup {
		return nil, domain.ErrLeagueNotInSetup
	}

	count, err := s.teamRepo.CountByLeague(ctx, league.ID)
	if err != nil {
		return nil, err
	}
	if count >= league.MaxTeams {
		return nil, domain.ErrLeagueFull
	}

	team := &domain.Team{
		ID:          uuid.New(),
		LeagueID:    league.ID,
		DisplayName: displayName,
		JoinedAt:    s.clock.Now(),
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Info("team joined",
		zap.String("leagueId", league.ID.String()),
		zap.String("teamId", team.ID.String()),
	)

	return &JoinLeagueResult{League: league, Team: team}, nil
}

// StartDraft assigns a random permutation of draft positions 1..N and flips
// the league to drafting, atomically. Only the commissioner (earliest-joined
// team, ties broken by creation sequence) may start it.
func (s *LeagueService) StartDraft(ctx context.Context, leagueID, callerTeamID uuid.UUID) error {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return err
	}
	if league.Status != domain.LeagueStatusSetup {
		return domain.ErrLeagueNotInSetup
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return err
	}
	if len(teams) < 2 {
		return domain.ErrNotEnoughTeams
	}

	if commissioner := domain.Commissioner(teams); commissioner.ID != callerTeamID {
		return domain.ErrNotCommissioner
	}

	positions := make(map[uuid.UUID]int, len(teams))
	for i, teamID := range shuffledTeamIDs(teams) {
		positions[teamID] = i + 1
	}

	if err := s.leagueRepo.BeginDraft(ctx, leagueID, positions); err != nil {
		return err
	}

	s.logger.Info("draft started",
		zap.String("leagueId", leagueID.String()),
		zap.Int("teams", len(teams)),
	)

	return nil
}

func shuffledTeamIDs(teams []*domain.Team) []uuid.UUID {
	ids := make([]uuid.UUID, len(teams))
	for i, team := range teams {
		ids[i] = team.ID
	}
	// Fisher-Yates; draft order must not be predictable from join order.
	for i := len(ids) - 1; i > 0; i-- {
		j := randomInt(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

func randomInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the platform entropy source is broken.
		panic(err)
	}
	return int(v.Int64())
}

func generateJoinToken() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
