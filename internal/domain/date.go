package domain

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD or RFC 3339")

// ParseInstant accepts a calendar day ("2025-06-28", midnight UTC) or a full
// RFC 3339 timestamp.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseDay parses s and keeps only the calendar day it names, as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// Window is an inclusive time range [From, To].
type Window struct {
	From time.Time
	To   time.Time
}

// TrailingDays returns [now - days, now].
func TrailingDays(now time.Time, days int) Window {
	return Window{From: now.AddDate(0, 0, -days), To: now}
}

// Day returns the window covering the calendar day of now in now's location,
// from 00:00 to the last nanosecond before midnight.
func Day(now time.Time) Window {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return Window{From: start, To: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// DayBounds returns the calendar days a date-only column must fall between
// to lie inside w: the first day starting at or after From, and the day of
// To. Both are in the window's own locations.
func (w Window) DayBounds() (first, last string) {
	y, m, d := w.From.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, w.From.Location())
	if start.Before(w.From) {
		start = start.AddDate(0, 0, 1)
	}
	return start.Format(DateLayout), w.To.Format(DateLayout)
}

// ContainsDay reports whether the calendar day stored in day (midnight UTC,
// as ParseDay returns) lies inside w.
func (w Window) ContainsDay(day time.Time) bool {
	first, last := w.DayBounds()
	s := day.UTC().Format(DateLayout)
	return s >= first && s <= last
}
