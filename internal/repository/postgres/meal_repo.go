package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"gorm.io/gorm"
)

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *mealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	return translate(r.db.WithContext(ctx).Create(meal).Error)
}

func (r *mealRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	var meals []*domain.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Meal, error) {
	var meals []*domain.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, w.From, w.To).
		Order("date ASC, created_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}
