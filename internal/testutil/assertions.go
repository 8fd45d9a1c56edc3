package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse verifies the status and decodes the JSON body into v
func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, v any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code: %s", string(body))

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()
	defer resp.Body.Close()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	// Error responses are plain text in this API
	assert.Contains(t, string(body), expectedMessage, "error message mismatch")
}

// AssertSummaryCounts checks how many of each record kind a summary holds
func AssertSummaryCounts(t *testing.T, summary *domain.Summary, measurements, meals, workouts int) {
	t.Helper()
	assert.Len(t, summary.Measurements, measurements, "unexpected measurement count")
	assert.Len(t, summary.Meals, meals, "unexpected meal count")
	assert.Len(t, summary.Workouts, workouts, "unexpected workout count")
}

// AssertAscendingDates fails if dates are not in non-decreasing order
func AssertAscendingDates(t *testing.T, summary *domain.Summary) {
	t.Helper()
	for i := 1; i < len(summary.Measurements); i++ {
		assert.False(t, summary.Measurements[i].Date.Before(summary.Measurements[i-1].Date), "measurements out of order at %d", i)
	}
	for i := 1; i < len(summary.Meals); i++ {
		assert.False(t, summary.Meals[i].Date.Before(summary.Meals[i-1].Date), "meals out of order at %d", i)
	}
	for i := 1; i < len(summary.Workouts); i++ {
		assert.False(t, summary.Workouts[i].Date.Before(summary.Workouts[i-1].Date), "workouts out of order at %d", i)
	}
}
