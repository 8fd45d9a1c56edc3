package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"gorm.io/gorm"
)

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *workoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	return translate(r.db.WithContext(ctx).Create(workout).Error)
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error) {
	var workouts []*domain.Workout
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepository) ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Workout, error) {
	var workouts []*domain.Workout
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, w.From, w.To).
		Order("date ASC, created_at ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}
