package postgres

import (
	"context"
	"errors"

	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pickRepository struct {
	db *gorm.DB
}

func NewPickRepository(db *gorm.DB) *pickRepository {
	return &pickRepository{db: db}
}

func (r *pickRepository) Create(ctx context.Context, pick *domain.Pick) error {
	err := r.db.WithContext(ctx).Create(pick).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Either the overall slot or the celebrity was taken by a
		// concurrent writer. The serializer makes this unreachable in a
		// single-process deployment; the constraint is the backstop.
		return domain.ErrCelebrityTaken
	}
	return err
}

func (r *pickRepository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.Pick, error) {
	var picks []*domain.Pick
	err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("overall ASC").
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	return picks, nil
}

func (r *pickRepository) CountByLeague(ctx context.Context, leagueID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Pick{}).
		Where("league_id = ?", leagueID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *pickRepository) FindByCelebrity(ctx context.Context, leagueID, celebrityID uuid.UUID) (*domain.Pick, error) {
	var pick domain.Pick
	err := r.db.WithContext(ctx).
		First(&pick, "league_id = ? AND celebrity_id = ?", leagueID, celebrityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pick, nil
}
