package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type leagueRepository struct {
	db *gorm.DB
}

func NewLeagueRepository(db *gorm.DB) *leagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) Create(ctx context.Context, league *domain.League) error {
	return r.db.WithContext(ctx).Create(league).Error
}

func (r *leagueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.League, error) {
	var league domain.League
	err := r.db.WithContext(ctx).First(&league, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeagueNotFound
		}
		return nil, err
	}
	return &league, nil
}

func (r *leagueRepository) GetByJoinToken(ctx context.Context, token string) (*domain.League, error) {
	var league domain.League
	err := r.db.WithContext(ctx).First(&league, "join_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeagueNotFound
		}
		return nil, err
	}
	return &league, nil
}

func (r *leagueRepository) GetByIDOrToken(ctx context.Context, value string) (*domain.League, error) {
	if id, err := uuid.Parse(value); err == nil {
		league, err := r.GetByID(ctx, id)
		if err == nil {
			return league, nil
		}
		if !errors.Is(err, domain.ErrLeagueNotFound) {
			return nil, err
		}
	}
	return r.GetByJoinToken(ctx, value)
}

func (r *leagueRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LeagueStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.League{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLeagueNotFound
	}
	return nil
}

// BeginDraft assigns every team's draft position and flips the league to
// drafting in one transaction, so a crash can never leave a half-assigned
// rotation.
func (r *leagueRepository) BeginDraft(ctx context.Context, leagueID uuid.UUID, positions map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for teamID, position := range positions {
			result := tx.Model(&domain.Team{}).
				Where("id = ? AND league_id = ?", teamID, leagueID).
				Update("draft_position", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("assign position %d: %w", position, domain.ErrTeamNotFound)
			}
		}

		result := tx.Model(&domain.League{}).
			Where("id = ?", leagueID).
			Update("status", domain.LeagueStatusDrafting)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrLeagueNotFound
		}
		return nil
	})
}
