package domain

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LeagueID      uuid.UUID `json:"leagueId" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_league_position"`
	DisplayName   string    `json:"displayName" gorm:"not null"`
	DraftPosition *int      `json:"draftPosition" gorm:"uniqueIndex:idx_team_league_position,where:draft_position IS NOT NULL"`
	// Seq is a monotonic creation counter. JoinedAt can tie under load;
	// Seq is the commissioner tie-break.
	Seq      int64     `json:"-" gorm:"autoIncrement;uniqueIndex"`
	JoinedAt time.Time `json:"joinedAt"`

	League *League `json:"-" gorm:"foreignKey:LeagueID"`
}

// Commissioner returns the earliest-joined team, ties broken by Seq.
// Returns nil for an empty slice.
func Commissioner(teams []*Team) *Team {
	var commissioner *Team
	for _, t := range teams {
		if commissioner == nil {
			commissioner = t
			continue
		}
		if t.JoinedAt.Before(commissioner.JoinedAt) ||
			(t.JoinedAt.Equal(commissioner.JoinedAt) && t.Seq < commissioner.Seq) {
			commissioner = t
		}
	}
	return commissioner
}
