package domain

import (
	"time"

	"github.com/google/uuid"
)

type LeagueStatus string

const (
	LeagueStatusSetup    LeagueStatus = "setup"
	LeagueStatusDrafting LeagueStatus = "drafting"
	LeagueStatusComplete LeagueStatus = "complete"
)

// Status only moves forward: setup -> drafting -> complete.
func (s LeagueStatus) CanTransitionTo(next LeagueStatus) bool {
	switch s {
	case LeagueStatusSetup:
		return next == LeagueStatusDrafting
	case LeagueStatusDrafting:
		return next == LeagueStatusComplete
	default:
		return false
	}
}

type League struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string       `json:"name" gorm:"not null"`
	JoinToken    string       `json:"joinToken" gorm:"uniqueIndex;not null"`
	Status       LeagueStatus `json:"status" gorm:"not null;default:'setup'"`
	MaxTeams     int          `json:"maxTeams" gorm:"not null"`
	PicksPerTeam int          `json:"picksPerTeam" gorm:"not null"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// TotalPicks is the ledger length at which the draft is complete.
// Rounds are sized by the live team count, not this quota.
func (l *League) TotalPicks(teamCount int) int {
	return teamCount * l.PicksPerTeam
}
