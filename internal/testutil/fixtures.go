package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/BlakeDanielson/celeb-draft/internal/service"
)

// CreateLeague creates a league through the service layer.
func CreateLeague(t *testing.T, env *Env, input service.CreateLeagueInput) *domain.League {
	t.Helper()

	if input.Name == "" {
		input.Name = "Test League"
	}
	league, err := env.Services.League.CreateLeague(context.Background(), input)
	if err != nil {
		t.Fatalf("failed to create league: %v", err)
	}
	return league
}

// JoinTeam joins a team to the league, advancing the fake clock so join
// timestamps stay distinct.
func JoinTeam(t *testing.T, env *Env, league *domain.League, displayName string) *domain.Team {
	t.Helper()

	env.Clock.Advance(time.Second)
	result, err := env.Services.League.JoinLeague(context.Background(), league.JoinToken, displayName)
	if err != nil {
		t.Fatalf("failed to join league: %v", err)
	}
	return result.Team
}

// AddCelebrity adds a celebrity to the league's pool.
func AddCelebrity(t *testing.T, env *Env, league *domain.League, team *domain.Team, name string) *domain.Celebrity {
	t.Helper()

	celebrity, err := env.Services.Celebrity.AddCelebrity(context.Background(), league.ID, team.ID, name)
	if err != nil {
		t.Fatalf("failed to add celebrity %q: %v", name, err)
	}
	return celebrity
}

// SetupDraftingLeague creates a league, joins teamCount teams, starts the
// draft, and returns the league (now drafting) with the teams in draft
// position order.
func SetupDraftingLeague(t *testing.T, env *Env, teamCount, picksPerTeam int) (*domain.League, []*domain.Team) {
	t.Helper()

	ctx := context.Background()

	league := CreateLeague(t, env, service.CreateLeagueInput{
		Name:         "Draft Night",
		MaxTeams:     20,
		PicksPerTeam: picksPerTeam,
	})

	var commissioner *domain.Team
	for i := 0; i < teamCount; i++ {
		team := JoinTeam(t, env, league, fmt.Sprintf("Team %d", i+1))
		if commissioner == nil {
			commissioner = team
		}
	}

	if err := env.Services.League.StartDraft(ctx, league.ID, commissioner.ID); err != nil {
		t.Fatalf("failed to start draft: %v", err)
	}

	league, err := env.Repos.League.GetByID(ctx, league.ID)
	if err != nil {
		t.Fatalf("failed to reload league: %v", err)
	}

	teams, err := env.Repos.Team.ListByDraftPosition(ctx, league.ID)
	if err != nil {
		t.Fatalf("failed to list teams: %v", err)
	}

	return league, teams
}

// PoolCelebrities fills the league's pool with n generated names, added by
// the given team, and returns them in insertion order.
func PoolCelebrities(t *testing.T, env *Env, league *domain.League, team *domain.Team, n int) []*domain.Celebrity {
	t.Helper()

	celebrities := make([]*domain.Celebrity, n)
	for i := 0; i < n; i++ {
		celebrities[i] = AddCelebrity(t, env, league, team, fmt.Sprintf("Celebrity %02d", i+1))
	}
	return celebrities
}
