package postgres

import (
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table managed by AutoMigrate.
var Models = []any{
	&domain.User{},
	&domain.Session{},
	&domain.Measurement{},
	&domain.Meal{},
	&domain.Workout{},
}

func NewConnection(databaseURL string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		Session:     NewSessionRepository(db),
		Measurement: NewMeasurementRepository(db),
		Meal:        NewMealRepository(db),
		Workout:     NewWorkoutRepository(db),
	}
}
