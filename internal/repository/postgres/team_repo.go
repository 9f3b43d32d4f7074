package postgres

import (
	"context"
	"errors"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.Team, error) {
	var teams []*domain.Team
	err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("joined_at ASC, seq ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) ListByDraftPosition(ctx context.Context, leagueID uuid.UUID) ([]*domain.Team, error) {
	var teams []*domain.Team
	err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("draft_position ASC NULLS LAST, joined_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) CountByLeague(ctx context.Context, leagueID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Team{}).
		Where("league_id = ?", leagueID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
