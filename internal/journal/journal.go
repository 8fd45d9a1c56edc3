// Package journal is the client-side copy of a user's records, grouped by day.
// It is filled from the server and never written back to it.
package journal

import (
	"context"
	"sort"
	"time"

	"github.com/popo0015/body-tracker/internal/domain"
)

// Entry is everything recorded for one calendar day.
type Entry struct {
	Date        string              `json:"date"`
	Measurement *domain.Measurement `json:"measurement,omitempty"`
	Meals       []*domain.Meal      `json:"meals"`
	Workouts    []*domain.Workout   `json:"workouts"`
}

// TotalKcal sums every meal logged on the day.
func (e Entry) TotalKcal() float64 {
	var total float64
	for _, m := range e.Meals {
		total += m.TotalKcal()
	}
	return total
}

type Repository interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
	// Upsert replaces the entry with the same Date, or inserts it in date order.
	Upsert(ctx context.Context, entry Entry) error
}

// FromSummary groups a server summary into one entry per day, ascending.
// Meals and workouts are bucketed by their day in loc. Measurement dates are
// already calendar days and are used as stored.
func FromSummary(s *domain.Summary, loc *time.Location) []Entry {
	if loc == nil {
		loc = time.UTC
	}
	byDate := make(map[string]*Entry)
	get := func(date string) *Entry {
		e, ok := byDate[date]
		if !ok {
			e = &Entry{Date: date, Meals: []*domain.Meal{}, Workouts: []*domain.Workout{}}
			byDate[date] = e
		}
		return e
	}

	for _, m := range s.Measurements {
		get(m.Date.UTC().Format(domain.DateLayout)).Measurement = m
	}
	for _, m := range s.Meals {
		e := get(m.Date.In(loc).Format(domain.DateLayout))
		e.Meals = append(e.Meals, m)
	}
	for _, w := range s.Workouts {
		e := get(w.Date.In(loc).Format(domain.DateLayout))
		e.Workouts = append(e.Workouts, w)
	}

	entries := make([]Entry, 0, len(byDate))
	for _, e := range byDate {
		entries = append(entries, *e)
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []Entry) {
	// YYYY-MM-DD sorts lexically
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
}
