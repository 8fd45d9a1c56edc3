package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"go.uber.org/zap"
)

type contextKey string

const (
	UserKey contextKey = "user"

	SessionCookieName = "session_token"
)

// SessionResolver maps a session token to its user; nil means anonymous.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Authenticate resolves the session cookie once per request and stores the
// user in the request context. Requests without a valid session pass through
// anonymously; handlers decide whether that is acceptable.
func Authenticate(sessions SessionResolver, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := sessions.Resolve(r.Context(), token)
			if err != nil {
				log.Errorw("resolve session", "path", r.URL.Path, "error", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionToken returns the raw session cookie value, or "" when absent.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}

// RequireAuth rejects anonymous requests before they reach the handler.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
