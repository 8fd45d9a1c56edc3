package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/popo0015/body-tracker/internal/domain"
)

// listFlag collects a flag that may be repeated.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ", ")
}

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// floatFlag distinguishes "not given" from an explicit zero.
type floatFlag struct {
	value *float64
}

func (f *floatFlag) String() string {
	if f.value == nil {
		return ""
	}
	return strconv.FormatFloat(*f.value, 'f', -1, 64)
}

func (f *floatFlag) Set(v string) error {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	f.value = &n
	return nil
}

// parseMealItem reads "product:grams:kcal". The product may itself contain colons.
func parseMealItem(s string) (domain.MealItem, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return domain.MealItem{}, fmt.Errorf("item %q: want product:grams:kcal", s)
	}
	n := len(parts)
	product := strings.Join(parts[:n-2], ":")
	grams, err := strconv.ParseFloat(parts[n-2], 64)
	if err != nil {
		return domain.MealItem{}, fmt.Errorf("item %q: grams: %w", s, err)
	}
	kcal, err := strconv.ParseFloat(parts[n-1], 64)
	if err != nil {
		return domain.MealItem{}, fmt.Errorf("item %q: kcal: %w", s, err)
	}
	return domain.MealItem{Product: product, Grams: grams, Kcal: kcal}, nil
}

// parseExercise reads "name:sets:reps:weight".
func parseExercise(s string) (domain.ExerciseSet, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return domain.ExerciseSet{}, fmt.Errorf("exercise %q: want name:sets:reps:weight", s)
	}
	sets, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.ExerciseSet{}, fmt.Errorf("exercise %q: sets: %w", s, err)
	}
	reps, err := strconv.Atoi(parts[2])
	if err != nil {
		return domain.ExerciseSet{}, fmt.Errorf("exercise %q: reps: %w", s, err)
	}
	weight, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return domain.ExerciseSet{}, fmt.Errorf("exercise %q: weight: %w", s, err)
	}
	return domain.ExerciseSet{Exercise: parts[0], Sets: sets, Reps: reps, Weight: weight}, nil
}
