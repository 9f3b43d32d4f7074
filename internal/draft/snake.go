// Package draft holds the pure snake-order turn math. It has no state and
// no I/O; callers are responsible for loading the team ordering and the
// ledger length.
package draft

// Round returns the 1-based round containing the given overall pick number.
// Rounds are sized by the live team count, not by the league's per-team
// quota; only team-count rounding keeps the snake symmetric.
func Round(overall, teamCount int) int {
	return (overall + teamCount - 1) / teamCount
}

// ExpectedIndex returns the 0-based index into the position-ordered team
// list of the team expected to make pick number picksSoFar+1. Odd rounds
// run forward, even rounds run reversed.
//
// teamCount must be >= 1; a roster with no teams is a caller error to be
// rejected before the math is consulted.
func ExpectedIndex(picksSoFar, teamCount int) int {
	overall := picksSoFar + 1
	indexInRound := (overall - 1) % teamCount
	if Round(overall, teamCount)%2 == 1 {
		return indexInRound
	}
	return teamCount - 1 - indexInRound
}
