package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/repository/postgres"
	"github.com/popo0015/body-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealRepository_AppendsSameDay(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	day := time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC)

	for i, product := range []string{"oats", "rice"} {
		require.NoError(t, repo.Create(ctx, &domain.Meal{
			ID:        uuid.New(),
			UserID:    user.ID,
			Date:      day,
			Items:     []domain.MealItem{{Product: product, Grams: 100, Kcal: 350}},
			CreatedAt: day.Add(time.Duration(i+8) * time.Hour),
		}))
	}

	meals, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "rice", meals[0].Items[0].Product, "latest same-day meal first")
	assert.Equal(t, "oats", meals[1].Items[0].Product)
}

func TestMealRepository_ListInWindow(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	now := time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)

	testutil.NewMealBuilder(user).WithDate(now.AddDate(0, 0, -31)).Build(t, testDB.DB)
	inside := testutil.NewMealBuilder(user).
		WithDate(now.AddDate(0, 0, -29)).
		WithItems(domain.MealItem{Product: "rice", Grams: 150, Kcal: 195}, domain.MealItem{Product: "egg", Grams: 50, Kcal: 78}).
		Build(t, testDB.DB)
	latest := testutil.NewMealBuilder(user).WithDate(now.Add(-time.Hour)).Build(t, testDB.DB)
	testutil.NewMealBuilder(other).WithDate(now.Add(-time.Hour)).Build(t, testDB.DB)

	got, err := repo.ListInWindow(ctx, user.ID, domain.TrailingDays(now, 30))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, inside.ID, got[0].ID)
	assert.Len(t, got[0].Items, 2)
	assert.Equal(t, 273.0, got[0].TotalKcal())
	assert.Equal(t, latest.ID, got[1].ID)
}
