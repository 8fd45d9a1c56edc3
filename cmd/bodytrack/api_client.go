package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/popo0015/body-tracker/internal/domain"
)

const sessionCookieName = "session_token"

// APIClient handles HTTP communication with the body-tracker server.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		token: token,
	}
}

// Token is the session token currently held by the client.
func (c *APIClient) Token() string {
	return c.token
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MeasurementInput struct {
	Date       string   `json:"date"`
	Waist      *float64 `json:"waist,omitempty"`
	Hips       *float64 `json:"hips,omitempty"`
	Thigh      *float64 `json:"thigh,omitempty"`
	Arm        *float64 `json:"arm,omitempty"`
	Chest      *float64 `json:"chest,omitempty"`
	UnderNavel *float64 `json:"underNavel,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
}

func (c *APIClient) Signup(email, password string) error {
	resp, err := c.post("/api/auth/signup", credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("signup request failed: %w", err)
	}
	defer resp.Body.Close()

	return expectStatus(resp, http.StatusCreated, "signup")
}

// Login stores the session token from the response cookie in the client.
func (c *APIClient) Login(email, password string) error {
	resp, err := c.post("/api/auth/login", credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusOK, "login"); err != nil {
		return err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			c.token = cookie.Value
			return nil
		}
	}
	return fmt.Errorf("login succeeded but no %s cookie was returned", sessionCookieName)
}

func (c *APIClient) Logout() error {
	resp, err := c.post("/api/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusOK, "logout"); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *APIClient) SaveMeasurement(in MeasurementInput) (*domain.Measurement, error) {
	var out domain.Measurement
	if err := c.postJSON("/measurements", in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) AddMeal(date string, items []domain.MealItem) (*domain.Meal, error) {
	body := map[string]any{"date": date, "items": items}

	var out domain.Meal
	if err := c.postJSON("/meals", body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) AddWorkout(date string, exercises []domain.ExerciseSet) (*domain.Workout, error) {
	body := map[string]any{"date": date, "exercises": exercises}

	var out domain.Workout
	if err := c.postJSON("/workouts", body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Today() (*domain.Summary, error) {
	var out domain.Summary
	if err := c.getJSON("/api/entries/today", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches the trailing window; days <= 0 leaves the server default.
func (c *APIClient) History(days int) (*domain.Summary, error) {
	path := "/api/entries/history"
	if days > 0 {
		path += "?" + url.Values{"days": {strconv.Itoa(days)}}.Encode()
	}

	var out domain.Summary
	if err := c.getJSON(path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) postJSON(path string, body any, wantStatus int, out any) error {
	resp, err := c.post(path, body)
	if err != nil {
		return fmt.Errorf("POST %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, wantStatus, "POST "+path); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *APIClient) getJSON(path string, out any) error {
	resp, err := c.get(path)
	if err != nil {
		return fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusOK, "GET "+path); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *APIClient) get(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	return c.httpClient.Do(req)
}

func (c *APIClient) post(path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.httpClient.Do(req)
}

func (c *APIClient) authorize(req *http.Request) {
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.token})
	}
}

// StatusError is returned when the server answers with an unexpected status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed (status %d): %s", e.Op, e.StatusCode, e.Body)
}

func expectStatus(resp *http.Response, want int, op string) error {
	if resp.StatusCode == want {
		return nil
	}
	bodyBytes, _ := io.ReadAll(resp.Body)
	return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(bodyBytes))}
}
