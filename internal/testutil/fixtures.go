package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with a unique email
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates the user and returns a client holding its session cookie
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, *Client) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	client := NewClient(t, ts)
	resp := client.PostJSON(t, "/api/auth/login", map[string]string{
		"email":    user.Email,
		"password": password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: status %d", resp.StatusCode)
	}

	return user, client
}

// MeasurementBuilder inserts measurements directly, bypassing the API
type MeasurementBuilder struct {
	user   *domain.User
	date   time.Time
	weight *float64
	waist  *float64
}

func NewMeasurementBuilder(user *domain.User) *MeasurementBuilder {
	now := time.Now().UTC()
	return &MeasurementBuilder{
		user: user,
		date: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}

func (b *MeasurementBuilder) WithDate(date time.Time) *MeasurementBuilder {
	b.date = date
	return b
}

func (b *MeasurementBuilder) WithWeight(weight float64) *MeasurementBuilder {
	b.weight = &weight
	return b
}

func (b *MeasurementBuilder) WithWaist(waist float64) *MeasurementBuilder {
	b.waist = &waist
	return b
}

func (b *MeasurementBuilder) Build(t *testing.T, db *gorm.DB) *domain.Measurement {
	t.Helper()

	m := &domain.Measurement{
		ID:     uuid.New(),
		UserID: b.user.ID,
		Date:   b.date,
		Weight: b.weight,
		Waist:  b.waist,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("failed to create measurement: %v", err)
	}
	return m
}

// MealBuilder inserts meals directly, bypassing the API
type MealBuilder struct {
	user  *domain.User
	date  time.Time
	items []domain.MealItem
}

func NewMealBuilder(user *domain.User) *MealBuilder {
	return &MealBuilder{
		user:  user,
		date:  time.Now().UTC(),
		items: []domain.MealItem{{Product: "oats", Grams: 80, Kcal: 300}},
	}
}

func (b *MealBuilder) WithDate(date time.Time) *MealBuilder {
	b.date = date
	return b
}

func (b *MealBuilder) WithItems(items ...domain.MealItem) *MealBuilder {
	b.items = items
	return b
}

func (b *MealBuilder) Build(t *testing.T, db *gorm.DB) *domain.Meal {
	t.Helper()

	meal := &domain.Meal{
		ID:     uuid.New(),
		UserID: b.user.ID,
		Date:   b.date,
		Items:  b.items,
	}
	if err := db.Create(meal).Error; err != nil {
		t.Fatalf("failed to create meal: %v", err)
	}
	return meal
}

// WorkoutBuilder inserts workouts directly, bypassing the API
type WorkoutBuilder struct {
	user      *domain.User
	date      time.Time
	exercises []domain.ExerciseSet
}

func NewWorkoutBuilder(user *domain.User) *WorkoutBuilder {
	return &WorkoutBuilder{
		user:      user,
		date:      time.Now().UTC(),
		exercises: []domain.ExerciseSet{{Exercise: "squat", Sets: 3, Reps: 8, Weight: 60}},
	}
}

func (b *WorkoutBuilder) WithDate(date time.Time) *WorkoutBuilder {
	b.date = date
	return b
}

func (b *WorkoutBuilder) Build(t *testing.T, db *gorm.DB) *domain.Workout {
	t.Helper()

	workout := &domain.Workout{
		ID:        uuid.New(),
		UserID:    b.user.ID,
		Date:      b.date,
		Exercises: b.exercises,
	}
	if err := db.Create(workout).Error; err != nil {
		t.Fatalf("failed to create workout: %v", err)
	}
	return workout
}

// Client is an HTTP client bound to a test server that keeps cookies between requests
type Client struct {
	ts   *TestServer
	HTTP *http.Client
}

func NewClient(t *testing.T, ts *TestServer) *Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}

	return &Client{
		ts: ts,
		HTTP: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *Client) PostJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	resp, err := c.HTTP.Post(c.ts.URL(path), "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func (c *Client) Get(t *testing.T, path string) *http.Response {
	t.Helper()

	resp, err := c.HTTP.Get(c.ts.URL(path))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// SessionCookie returns the session cookie currently held for the server, if any
func (c *Client) SessionCookie() *http.Cookie {
	req, _ := http.NewRequest(http.MethodGet, c.ts.URL("/"), nil)
	for _, cookie := range c.HTTP.Jar.Cookies(req.URL) {
		if cookie.Name == "session_token" {
			return cookie
		}
	}
	return nil
}
