package postgres

import (
	"context"
	"errors"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type celebrityRepository struct {
	db *gorm.DB
}

func NewCelebrityRepository(db *gorm.DB) *celebrityRepository {
	return &celebrityRepository{db: db}
}

func (r *celebrityRepository) Create(ctx context.Context, celebrity *domain.Celebrity) error {
	err := r.db.WithContext(ctx).Create(celebrity).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Composite unique index on (league_id, normalized_name).
		return domain.ErrDuplicateCelebrity
	}
	return err
}

func (r *celebrityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Celebrity, error) {
	var celebrity domain.Celebrity
	err := r.db.WithContext(ctx).First(&celebrity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCelebrityNotFound
		}
		return nil, err
	}
	return &celebrity, nil
}

func (r *celebrityRepository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.Celebrity, error) {
	var celebrities []*domain.Celebrity
	err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("added_at ASC").
		Find(&celebrities).Error
	if err != nil {
		return nil, err
	}
	return celebrities, nil
}
