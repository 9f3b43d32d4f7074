package service_test

import (
	"context"
	"testing"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/BlakeDanielson/celeb-draft/internal/service"
	"github.com/BlakeDanielson/celeb-draft/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelebrityService_AddCelebrity(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	league := testutil.CreateLeague(t, env, service.CreateLeagueInput{Name: "Pool Party"})
	team := testutil.JoinTeam(t, env, league, "Adders")

	celebrity, err := env.Services.Celebrity.AddCelebrity(ctx, league.ID, team.ID, "  Tom Cruise  ")
	require.NoError(t, err)
	assert.Equal(t, "Tom Cruise", celebrity.Name)
	assert.Equal(t, team.ID, celebrity.AddedByTeamID)

	_, err = env.Services.Celebrity.AddCelebrity(ctx, league.ID, team.ID, "")
	assert.ErrorIs(t, err, service.ErrCelebrityNameRequired)
}

func TestCelebrityService_DuplicateNormalization(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	league := testutil.CreateLeague(t, env, service.CreateLeagueInput{Name: "League A"})
	team := testutil.JoinTeam(t, env, league, "Adders")

	_, err := env.Services.Celebrity.AddCelebrity(ctx, league.ID, team.ID, "Tom Cruise")
	require.NoError(t, err)

	// Case and internal whitespace differences are the same name.
	_, err = env.Services.Celebrity.AddCelebrity(ctx, league.ID, team.ID, " tom  cruise ")
	assert.ErrorIs(t, err, domain.ErrDuplicateCelebrity)

	// A different league is free to add the same name.
	otherLeague := testutil.CreateLeague(t, env, service.CreateLeagueInput{Name: "League B"})
	otherTeam := testutil.JoinTeam(t, env, otherLeague, "Rivals")
	_, err = env.Services.Celebrity.AddCelebrity(ctx, otherLeague.ID, otherTeam.ID, "tom cruise")
	assert.NoError(t, err)
}

func TestCelebrityService_Rejections(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	league := testutil.CreateLeague(t, env, service.CreateLeagueInput{Name: "Strict"})
	team := testutil.JoinTeam(t, env, league, "Locals")

	otherLeague := testutil.CreateLeague(t, env, service.CreateLeagueInput{Name: "Elsewhere"})
	outsider := testutil.JoinTeam(t, env, otherLeague, "Outsiders")

	// Cross-league team reference.
	_, err := env.Services.Celebrity.AddCelebrity(ctx, league.ID, outsider.ID, "Somebody")
	assert.ErrorIs(t, err, domain.ErrTeamWrongLeague)

	// Completed leagues take no more names.
	doneLeague, teams := testutil.SetupDraftingLeague(t, env, 2, 1)
	pool := testutil.PoolCelebrities(t, env, doneLeague, teams[0], 2)
	_, err = env.Services.Draft.SubmitPick(ctx, doneLeague.ID, teams[0].ID, pool[0].ID)
	require.NoError(t, err)
	_, err = env.Services.Draft.SubmitPick(ctx, doneLeague.ID, teams[1].ID, pool[1].ID)
	require.NoError(t, err)

	_, err = env.Services.Celebrity.AddCelebrity(ctx, doneLeague.ID, teams[0].ID, "Too Late")
	assert.ErrorIs(t, err, domain.ErrLeagueComplete)

	// Unknown league.
	_, err = env.Services.Celebrity.ListCelebrities(ctx, team.ID)
	assert.ErrorIs(t, err, domain.ErrLeagueNotFound)
}
