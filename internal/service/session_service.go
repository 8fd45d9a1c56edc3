package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/repository"
	"go.uber.org/zap"
)

const tokenBytes = 32

// SessionService issues, resolves and revokes opaque session tokens.
//
// A session is active from creation until ExpiresAt. After that it simply
// stops resolving; the row is left in place unless PurgeExpired runs.
// Revocation deletes the row and is terminal.
type SessionService struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionService(sessions repository.SessionRepository, users repository.UserRepository, ttl time.Duration) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Tests use it to move past expiry.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
}

func (s *SessionService) Create(ctx context.Context, userID uuid.UUID) (*IssuedSession, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.New(),
		TokenHash: hashToken(token),
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &IssuedSession{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// Resolve returns the user owning token, or nil when the token is empty,
// unknown, expired or belongs to a user that no longer exists. Only storage
// failures are returned as errors.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.GetByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !session.ActiveAt(s.now()) {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// Revoke deletes the session for token. Unknown or empty tokens are not an error.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByTokenHash(ctx, hashToken(token))
}

func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}

// RunSweeper purges expired sessions every interval until ctx is cancelled.
func (s *SessionService) RunSweeper(ctx context.Context, interval time.Duration, log *zap.SugaredLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				log.Errorw("purge expired sessions", "error", err)
				continue
			}
			if n > 0 {
				log.Infow("purged expired sessions", "count", n)
			}
		}
	}
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
