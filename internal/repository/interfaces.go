package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type MeasurementRepository interface {
	// Upsert inserts or overwrites the row keyed by (UserID, Date) in one statement.
	Upsert(ctx context.Context, m *domain.Measurement) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Measurement, error)
	ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Measurement, error)
}

type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)
	ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Meal, error)
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error)
	ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Workout, error)
}

type Repositories struct {
	User        UserRepository
	Session     SessionRepository
	Measurement MeasurementRepository
	Meal        MealRepository
	Workout     WorkoutRepository
}
