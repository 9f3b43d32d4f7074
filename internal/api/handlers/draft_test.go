package handlers_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/BlakeDanielson/celeb-draft/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type PickResponse struct {
	ID          string `json:"id"`
	Round       int    `json:"round"`
	Overall     int    `json:"overall"`
	TeamID      string `json:"teamId"`
	CelebrityID string `json:"celebrityId"`
}

type DraftStateResponse struct {
	League             LeagueResponse `json:"league"`
	Teams              []TeamResponse `json:"teams"`
	Picks              []PickResponse `json:"picks"`
	CurrentPickOverall int            `json:"currentPickOverall"`
	UpNextTeamID       *string        `json:"upNextTeamId"`
	LastUpdated        string         `json:"lastUpdated"`
}

type RecapResponse struct {
	League LeagueResponse `json:"league"`
	Teams  []TeamResponse `json:"teams"`
	Picks  []PickResponse `json:"picks"`
}

func TestDraftFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	league := createLeague(t, ts, map[string]interface{}{
		"name":         "Friday Night",
		"picksPerTeam": 2,
	})

	first := joinLeague(t, ts, league.JoinToken, "Team One")
	second := joinLeague(t, ts, league.JoinToken, "Team Two")
	tokens := map[string]string{
		first.Team.ID:  first.SessionToken,
		second.Team.ID: second.SessionToken,
	}

	var celebrities []CelebrityResponse
	for _, name := range []string{"Zendaya", "Keanu Reeves", "Ayo Edebiri", "Pedro Pascal"} {
		req := testutil.NewRequest(t, "POST", ts.APIURL("/leagues/"+league.ID+"/celebrities"),
			map[string]string{"name": name}, first.SessionToken)
		resp := testutil.Do(t, req)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var celebrity CelebrityResponse
		testutil.AssertJSONResponse(t, resp, &celebrity)
		celebrities = append(celebrities, celebrity)
	}

	t.Run("no picks before the draft starts", func(t *testing.T) {
		resp := submitPick(t, ts, league.ID, first.SessionToken, celebrities[0].ID)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	startDraft(t, ts, league.ID, first.SessionToken)

	state := getDraftState(t, ts, league.ID, "")
	require.Len(t, state.Teams, 2)
	require.NotNil(t, state.UpNextTeamID)
	assert.Equal(t, 1, state.CurrentPickOverall)

	// Snake order for two teams: positions 1, 2, 2, 1.
	expectedTurns := []string{
		state.Teams[0].ID,
		state.Teams[1].ID,
		state.Teams[1].ID,
		state.Teams[0].ID,
	}
	assert.Equal(t, expectedTurns[0], *state.UpNextTeamID)

	t.Run("session required", func(t *testing.T) {
		req := testutil.NewRequest(t, "POST", ts.APIURL("/leagues/"+league.ID+"/picks"),
			map[string]string{"celebrityId": celebrities[0].ID}, "")
		resp := testutil.Do(t, req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("out of turn pick is rejected", func(t *testing.T) {
		wrongTeam := otherTeam(expectedTurns[0], state.Teams)
		resp := submitPick(t, ts, league.ID, tokens[wrongTeam], celebrities[0].ID)
		testutil.AssertErrorResponse(t, resp, http.StatusConflict, "turn")
	})

	t.Run("body teamId must match the session", func(t *testing.T) {
		wrongTeam := otherTeam(expectedTurns[0], state.Teams)
		req := testutil.NewRequest(t, "POST", ts.APIURL("/leagues/"+league.ID+"/picks"),
			map[string]string{
				"teamId":      wrongTeam,
				"celebrityId": celebrities[0].ID,
			}, tokens[expectedTurns[0]])
		resp := testutil.Do(t, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	for i, teamID := range expectedTurns {
		ts.Clock.Advance(time.Second)

		resp := submitPick(t, ts, league.ID, tokens[teamID], celebrities[i].ID)
		require.Equal(t, http.StatusCreated, resp.StatusCode, "pick %d", i+1)

		var pick PickResponse
		testutil.AssertJSONResponse(t, resp, &pick)
		assert.Equal(t, i+1, pick.Overall)
		assert.Equal(t, i/2+1, pick.Round)
		assert.Equal(t, teamID, pick.TeamID)
		assert.Equal(t, celebrities[i].ID, pick.CelebrityID)
	}

	t.Run("taken celebrity is rejected", func(t *testing.T) {
		resp := submitPick(t, ts, league.ID, first.SessionToken, celebrities[0].ID)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("draft completes when every slot is filled", func(t *testing.T) {
		state := getDraftState(t, ts, league.ID, "")
		assert.Equal(t, "complete", state.League.Status)
		assert.Len(t, state.Picks, 4)
	})

	t.Run("recap returns the full ledger", func(t *testing.T) {
		req := testutil.NewRequest(t, "GET", ts.APIURL("/leagues/"+league.ID+"/recap"), nil, "")
		resp := testutil.Do(t, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var recap RecapResponse
		testutil.AssertJSONResponse(t, resp, &recap)
		assert.Equal(t, "complete", recap.League.Status)
		assert.Len(t, recap.Teams, 2)
		require.Len(t, recap.Picks, 4)
		assert.Equal(t, 1, recap.Picks[0].Overall)
		assert.Equal(t, 4, recap.Picks[3].Overall)
	})
}

func TestDraftHandler_GetDraftState_ConditionalFetch(t *testing.T) {
	ts := testutil.NewTestServer(t)

	league := createLeague(t, ts, map[string]interface{}{
		"name":         "Pollers",
		"picksPerTeam": 2,
	})
	first := joinLeague(t, ts, league.JoinToken, "Watchers")
	second := joinLeague(t, ts, league.JoinToken, "Waiters")
	tokens := map[string]string{
		first.Team.ID:  first.SessionToken,
		second.Team.ID: second.SessionToken,
	}

	req := testutil.NewRequest(t, "POST", ts.APIURL("/leagues/"+league.ID+"/celebrities"),
		map[string]string{"name": "Zendaya"}, first.SessionToken)
	resp := testutil.Do(t, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var celebrity CelebrityResponse
	testutil.AssertJSONResponse(t, resp, &celebrity)

	startDraft(t, ts, league.ID, first.SessionToken)

	state := getDraftState(t, ts, league.ID, "")
	require.NotEmpty(t, state.LastUpdated)

	t.Run("unchanged state returns 304", func(t *testing.T) {
		req := testutil.NewRequest(t, "GET",
			ts.APIURL("/leagues/"+league.ID+"/draft-state?since="+url.QueryEscape(state.LastUpdated)), nil, "")
		resp := testutil.Do(t, req)
		assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	})

	t.Run("malformed since is rejected", func(t *testing.T) {
		req := testutil.NewRequest(t, "GET",
			ts.APIURL("/leagues/"+league.ID+"/draft-state?since=yesterday"), nil, "")
		resp := testutil.Do(t, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("pick advances the watermark", func(t *testing.T) {
		ts.Clock.Advance(5 * time.Second)

		pickResp := submitPick(t, ts, league.ID, tokens[*state.UpNextTeamID], celebrity.ID)
		require.Equal(t, http.StatusCreated, pickResp.StatusCode)

		req := testutil.NewRequest(t, "GET",
			ts.APIURL("/leagues/"+league.ID+"/draft-state?since="+url.QueryEscape(state.LastUpdated)), nil, "")
		resp := testutil.Do(t, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var fresh DraftStateResponse
		testutil.AssertJSONResponse(t, resp, &fresh)
		assert.Equal(t, 2, fresh.CurrentPickOverall)
		assert.NotEqual(t, state.LastUpdated, fresh.LastUpdated)
	})

	t.Run("unknown league", func(t *testing.T) {
		req := testutil.NewRequest(t, "GET",
			ts.APIURL("/leagues/00000000-0000-0000-0000-000000000000/draft-state"), nil, "")
		resp := testutil.Do(t, req)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// Helper functions

func submitPick(t *testing.T, ts *testutil.TestServer, leagueID, token, celebrityID string) *http.Response {
	t.Helper()

	req := testutil.NewRequest(t, "POST", ts.APIURL("/leagues/"+leagueID+"/picks"),
		map[string]string{"celebrityId": celebrityID}, token)
	return testutil.Do(t, req)
}

func getDraftState(t *testing.T, ts *testutil.TestServer, leagueID, since string) DraftStateResponse {
	t.Helper()

	path := "/leagues/" + leagueID + "/draft-state"
	if since != "" {
		path += "?since=" + url.QueryEscape(since)
	}
	req := testutil.NewRequest(t, "GET", ts.APIURL(path), nil, "")
	resp := testutil.Do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state DraftStateResponse
	testutil.AssertJSONResponse(t, resp, &state)
	return state
}

func otherTeam(teamID string, teams []TeamResponse) string {
	for _, team := range teams {
		if team.ID != teamID {
			return team.ID
		}
	}
	return teamID
}
