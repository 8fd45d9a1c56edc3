package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/api/middleware"
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeResolver struct {
	users map[string]*domain.User
	err   error
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.users[token], nil
}

func TestAuthenticate(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "a@example.com"}

	tests := []struct {
		name           string
		cookie         string
		resolver       *fakeResolver
		expectedStatus int
		wantUser       bool
		wantCalls      int
	}{
		{
			name:           "no cookie is anonymous",
			resolver:       &fakeResolver{},
			expectedStatus: http.StatusOK,
			wantCalls:      0,
		},
		{
			name:           "valid token attaches user",
			cookie:         "good",
			resolver:       &fakeResolver{users: map[string]*domain.User{"good": user}},
			expectedStatus: http.StatusOK,
			wantUser:       true,
			wantCalls:      1,
		},
		{
			name:           "unknown token is anonymous",
			cookie:         "stale",
			resolver:       &fakeResolver{users: map[string]*domain.User{}},
			expectedStatus: http.StatusOK,
			wantCalls:      1,
		},
		{
			name:           "storage failure is a server error",
			cookie:         "good",
			resolver:       &fakeResolver{err: errors.New("connection refused")},
			expectedStatus: http.StatusInternalServerError,
			wantCalls:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser bool
			var gotID uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, gotUser = middleware.GetUser(r.Context())
				gotID, _ = middleware.GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/measurements", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			middleware.Authenticate(tt.resolver, zap.NewNop().Sugar())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.wantUser, gotUser)
			assert.Equal(t, tt.wantCalls, tt.resolver.calls)
			if tt.wantUser {
				assert.Equal(t, user.ID, gotID)
			}
		})
	}
}

func TestGetUser_EmptyContext(t *testing.T) {
	_, ok := middleware.GetUser(context.Background())
	assert.False(t, ok)

	id, ok := middleware.GetUserID(context.Background())
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}

func TestRequireAuth(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		middleware.RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meals", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("resolved user passes", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		ctx := context.WithValue(req.Context(), middleware.UserKey, &domain.User{ID: uuid.New()})
		rec := httptest.NewRecorder()
		middleware.RequireAuth(next).ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})
}
