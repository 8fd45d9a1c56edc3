package main

import (
	"testing"

	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMealItem(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.MealItem
		wantErr bool
	}{
		{name: "simple", input: "oats:80:300", want: domain.MealItem{Product: "oats", Grams: 80, Kcal: 300}},
		{name: "decimal", input: "milk:200:120.5", want: domain.MealItem{Product: "milk", Grams: 200, Kcal: 120.5}},
		{name: "colon in product", input: "bar: chocolate:50:260", want: domain.MealItem{Product: "bar: chocolate", Grams: 50, Kcal: 260}},
		{name: "too few parts", input: "oats:80", wantErr: true},
		{name: "bad grams", input: "oats:lots:300", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMealItem(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExercise(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.ExerciseSet
		wantErr bool
	}{
		{name: "full", input: "squat:5:5:80", want: domain.ExerciseSet{Exercise: "squat", Sets: 5, Reps: 5, Weight: 80}},
		{name: "bodyweight", input: "pullup:3:10:0", want: domain.ExerciseSet{Exercise: "pullup", Sets: 3, Reps: 10}},
		{name: "missing weight", input: "squat:5:5", wantErr: true},
		{name: "fractional sets", input: "squat:2.5:5:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExercise(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatFlag(t *testing.T) {
	var f floatFlag
	assert.Nil(t, f.value)
	assert.Equal(t, "", f.String())

	require.NoError(t, f.Set("0"))
	require.NotNil(t, f.value)
	assert.Equal(t, 0.0, *f.value)

	assert.Error(t, f.Set("heavy"))
}
