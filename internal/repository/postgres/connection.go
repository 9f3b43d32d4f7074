package postgres

import (
	"github.com/BlakeDanielson/celeb-draft/internal/domain"
	"github.com/BlakeDanielson/celeb-draft/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.League{},
		&domain.Team{},
		&domain.Celebrity{},
		&domain.Pick{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		League:    NewLeagueRepository(db),
		Team:      NewTeamRepository(db),
		Celebrity: NewCelebrityRepository(db),
		Pick:      NewPickRepository(db),
	}
}
