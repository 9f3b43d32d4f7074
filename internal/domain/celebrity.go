package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Celebrity struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LeagueID       uuid.UUID `json:"leagueId" gorm:"type:uuid;not null;index;uniqueIndex:idx_celebrity_league_name"`
	Name           string    `json:"name" gorm:"not null"`
	NormalizedName string    `json:"-" gorm:"not null;uniqueIndex:idx_celebrity_league_name"`
	AddedByTeamID  uuid.UUID `json:"addedByTeamId" gorm:"type:uuid;not null"`
	AddedAt        time.Time `json:"addedAt"`

	League      *League `json:"-" gorm:"foreignKey:LeagueID"`
	AddedByTeam *Team   `json:"-" gorm:"foreignKey:AddedByTeamID"`
}

// NormalizeCelebrityName collapses the case and whitespace differences that
// make "Tom Cruise" and " tom  cruise " the same draftable item.
func NormalizeCelebrityName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
