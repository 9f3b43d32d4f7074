package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pick is one append-only ledger entry. Overall values are dense from 1
// within a league and a celebrity is claimed at most once.
type Pick struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LeagueID    uuid.UUID `json:"leagueId" gorm:"type:uuid;not null;index;uniqueIndex:idx_pick_league_overall;uniqueIndex:idx_pick_league_celebrity"`
	Round       int       `json:"round" gorm:"not null"`
	Overall     int       `json:"overall" gorm:"not null;uniqueIndex:idx_pick_league_overall"`
	TeamID      uuid.UUID `json:"teamId" gorm:"type:uuid;not null"`
	CelebrityID uuid.UUID `json:"celebrityId" gorm:"type:uuid;not null;uniqueIndex:idx_pick_league_celebrity"`
	PickedAt    time.Time `json:"pickedAt"`

	League    *League    `json:"-" gorm:"foreignKey:LeagueID"`
	Team      *Team      `json:"-" gorm:"foreignKey:TeamID"`
	Celebrity *Celebrity `json:"-" gorm:"foreignKey:CelebrityID"`
}
