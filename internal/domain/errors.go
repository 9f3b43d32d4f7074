package domain

import "errors"

// Not-found errors
var (
	ErrLeagueNotFound    = errors.New("league not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrCelebrityNotFound = errors.New("celebrity not found")
)

// Invalid-reference errors: the entity exists but belongs to another league.
var (
	ErrTeamWrongLeague      = errors.New("team does not belong to this league")
	ErrCelebrityWrongLeague = errors.New("celebrity does not belong to this league")
)

// Conflict errors: terminal for this attempt, safe to retry after
// re-observing fresh state.
var (
	ErrLeagueNotInSetup   = errors.New("league is not in setup")
	ErrLeagueNotDrafting  = errors.New("league is not drafting")
	ErrLeagueFull         = errors.New("league is full")
	ErrNotEnoughTeams     = errors.New("need at least 2 teams")
	ErrNoTeams            = errors.New("league has no teams")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrCelebrityTaken     = errors.New("celebrity already picked")
	ErrDuplicateCelebrity = errors.New("celebrity already exists in this league")
	ErrLeagueComplete     = errors.New("league draft is complete")
	ErrNotCommissioner    = errors.New("only the commissioner can perform this action")
)

// IsConflict reports whether err belongs to the conflict class.
func IsConflict(err error) bool {
	for _, conflict := range []error{
		ErrLeagueNotInSetup,
		ErrLeagueNotDrafting,
		ErrLeagueFull,
		ErrNotEnoughTeams,
		ErrNoTeams,
		ErrNotYourTurn,
		ErrCelebrityTaken,
		ErrDuplicateCelebrity,
		ErrLeagueComplete,
	} {
		if errors.Is(err, conflict) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err belongs to the not-found class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLeagueNotFound) ||
		errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrCelebrityNotFound)
}
