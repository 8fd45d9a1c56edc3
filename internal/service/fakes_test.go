package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUsers(users ...*domain.User) *fakeUsers {
	f := &fakeUsers{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	err      error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessions) Create(ctx context.Context, session *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sessions[session.TokenHash] = session
	return nil
}

func (f *fakeSessions) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessions) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.sessions, tokenHash)
	return nil
}

func (f *fakeSessions) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for k, s := range f.sessions {
		if !s.ActiveAt(now) {
			delete(f.sessions, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeSessions) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

type fakeMeasurements struct {
	rows []*domain.Measurement
}

func (f *fakeMeasurements) Upsert(ctx context.Context, m *domain.Measurement) error {
	for i, r := range f.rows {
		if r.UserID == m.UserID && r.Date.Equal(m.Date) {
			m.ID = r.ID
			f.rows[i] = m
			return nil
		}
	}
	m.ID = uuid.New()
	f.rows = append(f.rows, m)
	return nil
}

func (f *fakeMeasurements) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Measurement, error) {
	var out []*domain.Measurement
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMeasurements) ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Measurement, error) {
	var out []*domain.Measurement
	for _, r := range f.rows {
		if r.UserID == userID && w.ContainsDay(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMeals struct {
	rows []*domain.Meal
}

func (f *fakeMeals) Create(ctx context.Context, meal *domain.Meal) error {
	f.rows = append(f.rows, meal)
	return nil
}

func (f *fakeMeals) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	var out []*domain.Meal
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMeals) ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Meal, error) {
	var out []*domain.Meal
	for _, r := range f.rows {
		if r.UserID == userID && w.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeWorkouts struct {
	rows []*domain.Workout
}

func (f *fakeWorkouts) Create(ctx context.Context, workout *domain.Workout) error {
	f.rows = append(f.rows, workout)
	return nil
}

func (f *fakeWorkouts) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error) {
	var out []*domain.Workout
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeWorkouts) ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Workout, error) {
	var out []*domain.Workout
	for _, r := range f.rows {
		if r.UserID == userID && w.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}
