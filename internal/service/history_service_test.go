package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/repository"
	"github.com/popo0015/body-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_History(t *testing.T) {
	now := time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)
	userID, otherID := uuid.New(), uuid.New()

	measurements := &fakeMeasurements{rows: []*domain.Measurement{
		{ID: uuid.New(), UserID: userID, Date: now.AddDate(0, 0, -31)},
		{ID: uuid.New(), UserID: userID, Date: now.Truncate(24*time.Hour).AddDate(0, 0, -30)},
		{ID: uuid.New(), UserID: userID, Date: now.AddDate(0, 0, -29)},
		{ID: uuid.New(), UserID: otherID, Date: now.AddDate(0, 0, -1)},
	}}
	meals := &fakeMeals{rows: []*domain.Meal{
		{ID: uuid.New(), UserID: userID, Date: now.Add(-time.Hour)},
	}}
	workouts := &fakeWorkouts{}

	svc := service.NewHistoryService(&repository.Repositories{
		Measurement: measurements,
		Meal:        meals,
		Workout:     workouts,
	}, 30, time.UTC).WithClock(func() time.Time { return now })

	summary, err := svc.History(context.Background(), userID, 0)
	require.NoError(t, err)

	require.Len(t, summary.Measurements, 1)
	assert.Equal(t, now.AddDate(0, 0, -29), summary.Measurements[0].Date)
	assert.Len(t, summary.Meals, 1)
	assert.NotNil(t, summary.Workouts, "empty collections are never nil")
	assert.Empty(t, summary.Workouts)

	wide, err := svc.History(context.Background(), userID, 60)
	require.NoError(t, err)
	assert.Len(t, wide.Measurements, 3)
}

func TestHistoryService_InvalidWindow(t *testing.T) {
	svc := service.NewHistoryService(&repository.Repositories{
		Measurement: &fakeMeasurements{},
		Meal:        &fakeMeals{},
		Workout:     &fakeWorkouts{},
	}, 30, time.UTC)

	for _, days := range []int{-1, service.MaxHistoryDays + 1} {
		_, err := svc.History(context.Background(), uuid.New(), days)
		assert.ErrorIs(t, err, service.ErrInvalidWindow, "days=%d", days)
	}
}

func TestHistoryService_TodayUsesConfiguredZone(t *testing.T) {
	sofia, err := time.LoadLocation("Europe/Sofia")
	require.NoError(t, err)

	// 22:30 UTC on the 28th is already the 29th in Sofia.
	now := time.Date(2025, 6, 28, 22, 30, 0, 0, time.UTC)
	userID := uuid.New()

	meals := &fakeMeals{rows: []*domain.Meal{
		{ID: uuid.New(), UserID: userID, Date: time.Date(2025, 6, 28, 20, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Date: time.Date(2025, 6, 28, 21, 30, 0, 0, time.UTC)},
	}}

	svc := service.NewHistoryService(&repository.Repositories{
		Measurement: &fakeMeasurements{},
		Meal:        meals,
		Workout:     &fakeWorkouts{},
	}, 30, sofia).WithClock(func() time.Time { return now })

	summary, err := svc.Today(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, summary.Meals, 1)
	assert.Equal(t, meals.rows[1].ID, summary.Meals[0].ID)
}
